package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListingKind string

const (
	KindSale ListingKind = "sale"
	KindRent ListingKind = "rent"
)

type ListingStatus string

const (
	StatusActive    ListingStatus = "active"
	StatusSuspended ListingStatus = "suspended"
)

type Listing struct {
	gorm.Model
	CreatorID   uint           `json:"creatorID" gorm:"index;not null"`
	Creator     User           `json:"creator" gorm:"foreignKey:CreatorID;references:ID"`
	Title       string         `json:"title"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"not null;check:price >= 0"`
	Kind        ListingKind    `json:"kind" gorm:"type:varchar(10);index"` // sale, rent
	Bedrooms    int            `json:"bedrooms" gorm:"default:0"`
	Bathrooms   float32        `json:"bathrooms" gorm:"default:0"`
	Sqft        float32        `json:"sqft" gorm:"default:0"`
	Amenities   datatypes.JSON `json:"amenities"`
	Images      string         `json:"images"` // JSON array of URLs
	Address     string         `json:"address"`
	City        string         `json:"city" gorm:"index"`
	State       string         `json:"state"`
	Zip         string         `json:"zip"`
	Lat         float32        `json:"lat"`
	Lng         float32        `json:"lng"`
	Featured    bool           `json:"featured" gorm:"default:false;index"`

	// Trust & safety. Status only ever moves active -> suspended, and only
	// through the moderation machine.
	Status      ListingStatus `json:"status" gorm:"type:varchar(20);default:'active';index"` // active, suspended
	ReportCount int           `json:"reportCount" gorm:"default:0;check:report_count >= 0"`
	Views       int           `json:"views" gorm:"default:0"`
}

// Custom JSON marshaling to convert the Images string and Amenities JSON
// columns into plain arrays for clients.
func (l *Listing) MarshalJSON() ([]byte, error) {
	type Alias Listing
	aux := &struct {
		Images    []string `json:"images"`
		Amenities []string `json:"amenities"`
		Creator   *User    `json:"creator,omitempty"`
		*Alias
	}{
		Images:    []string{},
		Amenities: []string{},
		Creator:   nil,
		Alias:     (*Alias)(l),
	}

	if l.Images != "" {
		var images []string
		if err := json.Unmarshal([]byte(l.Images), &images); err == nil {
			aux.Images = images
		}
	}

	if l.Amenities != nil {
		var amenities []string
		if err := json.Unmarshal(l.Amenities, &amenities); err == nil {
			aux.Amenities = amenities
		}
	}

	// Only include the creator if it was preloaded, and without its own
	// listings to avoid a circular reference.
	if l.Creator.ID > 0 {
		creatorCopy := l.Creator
		creatorCopy.Listings = nil
		aux.Creator = &creatorCopy
	}

	return json.Marshal(aux)
}
