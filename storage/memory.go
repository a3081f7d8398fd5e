package storage

import (
	"context"
	"sync"
	"time"

	"hearth-home-server/models"
)

// MemoryListingStore is an in-memory listing store with the same contract
// as GormListingStore. It backs tests and local development, so every
// fixture set is isolated to the store instance that holds it.
type MemoryListingStore struct {
	mu       sync.Mutex
	listings map[uint]*models.Listing
	reports  []models.Report
	nextID   uint
}

func NewMemoryListingStore() *MemoryListingStore {
	return &MemoryListingStore{
		listings: make(map[uint]*models.Listing),
		nextID:   1,
	}
}

// Seed inserts listings verbatim, keeping preset ids, timestamps and
// moderation state.
func (s *MemoryListingStore) Seed(listings []models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range listings {
		l := listings[i]
		if l.ID == 0 {
			l.ID = s.nextID
		}
		if l.ID >= s.nextID {
			s.nextID = l.ID + 1
		}
		s.listings[l.ID] = &l
	}
}

func (s *MemoryListingStore) FetchListings(ctx context.Context) ([]models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Listing, 0, len(s.listings))
	for id := uint(1); id < s.nextID; id++ {
		if l, ok := s.listings[id]; ok {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *MemoryListingStore) FetchListingByID(ctx context.Context, id uint) (*models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (s *MemoryListingStore) Insert(ctx context.Context, listing *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if listing.ID == 0 {
		listing.ID = s.nextID
	}
	if listing.ID >= s.nextID {
		s.nextID = listing.ID + 1
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	listing.Status = models.StatusActive
	listing.ReportCount = 0
	listing.Views = 0
	copied := *listing
	s.listings[listing.ID] = &copied
	return nil
}

func (s *MemoryListingStore) PersistReport(ctx context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listings[report.ListingID]; !ok {
		return ErrNotFound
	}
	report.ID = uint(len(s.reports) + 1)
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	s.reports = append(s.reports, *report)
	return nil
}

func (s *MemoryListingStore) ApplyModeration(ctx context.Context, id uint, expectCount, newCount int, status models.ListingStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return false, ErrNotFound
	}
	if l.ReportCount != expectCount {
		return false, nil
	}
	l.ReportCount = newCount
	l.Status = status
	return true, nil
}

func (s *MemoryListingStore) IncrementViews(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return ErrNotFound
	}
	l.Views++
	return nil
}

// Reports returns a snapshot of the audit log, oldest first.
func (s *MemoryListingStore) Reports() []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}
