package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hearth-home-server/models"
)

// GormListingStore is the production listing store on postgres. It
// implements the query engine's ListingSource and the moderation
// machine's ListingStore.
type GormListingStore struct {
	db *gorm.DB
}

func NewGormListingStore(db *gorm.DB) *GormListingStore {
	return &GormListingStore{db: db}
}

// FetchListings returns every listing regardless of status; the query
// engine applies its own visibility filter.
func (s *GormListingStore) FetchListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.db.WithContext(ctx).Order("id").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// FetchListingByID bypasses visibility filtering so detail and owner views
// can still show a suspended listing.
func (s *GormListingStore) FetchListingByID(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := s.db.WithContext(ctx).First(&listing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// Insert stores a new listing with a fresh moderation lifecycle.
func (s *GormListingStore) Insert(ctx context.Context, listing *models.Listing) error {
	listing.Status = models.StatusActive
	listing.ReportCount = 0
	listing.Views = 0
	return s.db.WithContext(ctx).Create(listing).Error
}

// PersistReport appends a report row, refusing with ErrNotFound when the
// listing is absent. The existence check and the insert run in one
// transaction so no dangling audit row can be written.
func (s *GormListingStore) PersistReport(ctx context.Context, report *models.Report) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Listing{}).Where("id = ?", report.ListingID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return tx.Create(report).Error
	})
}

// ApplyModeration writes the post-report count and status in a single
// compare-and-set update keyed on the previous count. A false return means
// a concurrent report got there first and the caller should re-read.
func (s *GormListingStore) ApplyModeration(ctx context.Context, id uint, expectCount, newCount int, status models.ListingStatus) (bool, error) {
	result := s.db.WithContext(ctx).Model(&models.Listing{}).
		Where("id = ? AND report_count = ?", id, expectCount).
		Updates(map[string]interface{}{
			"report_count": newCount,
			"status":       status,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// IncrementViews bumps the view counter atomically in the database, so
// concurrent detail views never under-count.
func (s *GormListingStore) IncrementViews(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Model(&models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
