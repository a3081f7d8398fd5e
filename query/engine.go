package query

import (
	"context"
	"fmt"
	"sort"

	"hearth-home-server/models"
)

// ListingSource supplies the full candidate collection for a query. The
// contract is deliberately "bulk fetch + in-memory predicate": the source
// returns listings of every status and the engine does its own filtering
// and ordering, so result semantics never depend on backend query
// expressiveness.
type ListingSource interface {
	FetchListings(ctx context.Context) ([]models.Listing, error)
}

// Engine produces the ordered, visible result set for a FilterCriteria.
// It holds no state between calls; everything lives in the source.
type Engine struct {
	src ListingSource
}

func NewEngine(src ListingSource) *Engine {
	return &Engine{src: src}
}

// RunQuery fetches one snapshot of the collection, drops suspended
// listings, applies the criteria predicate and returns the results in
// canonical order: featured first, then newest first. An empty result is
// not an error.
func (e *Engine) RunQuery(ctx context.Context, criteria FilterCriteria) ([]models.Listing, error) {
	all, err := e.src.FetchListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}

	keep := BuildPredicate(criteria)
	results := make([]models.Listing, 0, len(all))
	for i := range all {
		l := all[i]
		// Visibility filter comes before any user criteria; the source is
		// not trusted to have pre-filtered.
		if l.Status != models.StatusActive {
			continue
		}
		if !keep(&l) {
			continue
		}
		results = append(results, l)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Featured != results[j].Featured {
			return results[i].Featured
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results, nil
}
