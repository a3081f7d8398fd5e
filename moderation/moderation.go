package moderation

import (
	"context"
	"fmt"

	"hearth-home-server/models"
)

// ReportThreshold is the report count at which a listing auto-suspends.
const ReportThreshold = 3

// ListingStore is the persistence boundary for the moderation machine.
// PersistReport must refuse with the store's not-found error when the
// listing is absent, so no audit row is ever written for a listing that
// does not exist. ApplyModeration is a compare-and-set on the previous
// report count: it returns false (and writes nothing) when the stored
// count no longer matches expectCount.
type ListingStore interface {
	FetchListingByID(ctx context.Context, id uint) (*models.Listing, error)
	PersistReport(ctx context.Context, report *models.Report) error
	ApplyModeration(ctx context.Context, id uint, expectCount, newCount int, status models.ListingStatus) (bool, error)
}

// Machine owns the report-count/suspension lifecycle of listings. The only
// transition is active -> suspended; suspended is terminal. Reports against
// a suspended listing still increment its count.
type Machine struct {
	store ListingStore
}

func NewMachine(store ListingStore) *Machine {
	return &Machine{store: store}
}

// ReportListing appends an audit report, increments the listing's report
// count and suspends the listing once the post-increment count reaches
// ReportThreshold. The increment and the threshold decision are applied as
// one atomic store write via a compare-and-set retry loop, so concurrent
// reports never lose an update and no incremented-but-unevaluated state is
// observable. Store failures propagate unchanged; there are no retries
// beyond re-running a lost CAS race.
func (m *Machine) ReportListing(ctx context.Context, listingID, reporterID uint, reason string) (*models.Listing, error) {
	report := &models.Report{
		ListingID:  listingID,
		ReporterID: reporterID,
		Reason:     reason,
	}
	if err := m.store.PersistReport(ctx, report); err != nil {
		return nil, err
	}

	for {
		listing, err := m.store.FetchListingByID(ctx, listingID)
		if err != nil {
			return nil, err
		}

		newCount := listing.ReportCount + 1
		status := listing.Status
		if newCount >= ReportThreshold {
			status = models.StatusSuspended
		}

		ok, err := m.store.ApplyModeration(ctx, listingID, listing.ReportCount, newCount, status)
		if err != nil {
			return nil, fmt.Errorf("apply moderation update: %w", err)
		}
		if ok {
			listing.ReportCount = newCount
			listing.Status = status
			return listing, nil
		}
		// Lost the race with a concurrent report; re-read and try again.
	}
}
