package routes

import (
	"context"

	"hearth-home-server/models"
	"hearth-home-server/moderation"
	"hearth-home-server/query"
)

// ListingStore is the slice of the storage contract the listing handlers
// need directly; search goes through the query engine and reports through
// the moderation machine.
type ListingStore interface {
	Insert(ctx context.Context, listing *models.Listing) error
	FetchListingByID(ctx context.Context, id uint) (*models.Listing, error)
	IncrementViews(ctx context.Context, id uint) error
}

// FilterTranslator converts a natural-language query into the same
// criteria shape the search form produces.
type FilterTranslator interface {
	ExtractFilters(ctx context.Context, userQuery string) (query.FilterCriteria, error)
}

// DescriptionGenerator drafts a listing description from key facts.
type DescriptionGenerator interface {
	GenerateListingDescription(ctx context.Context, features []string, kind models.ListingKind, city string) (string, error)
}

var (
	listingStore ListingStore
	engine       *query.Engine
	moderator    *moderation.Machine
	translator   FilterTranslator
	describer    DescriptionGenerator
)

// Bind wires the handlers to their collaborators. translator and describer
// may be nil, in which case AI-backed behavior degrades gracefully.
func Bind(store ListingStore, e *query.Engine, m *moderation.Machine, t FilterTranslator, d DescriptionGenerator) {
	listingStore = store
	engine = e
	moderator = m
	translator = t
	describer = d
}
