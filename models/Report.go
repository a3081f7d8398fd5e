package models

import (
	"time"
)

// Report is one abuse report against a listing. Rows are append-only: they
// are never updated or deleted, so the table doubles as the moderation
// audit log.
type Report struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ListingID  uint      `json:"listingID" gorm:"index;not null"`
	ReporterID uint      `json:"reporterID" gorm:"index"`
	Reason     string    `json:"reason" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"createdAt"`
}
