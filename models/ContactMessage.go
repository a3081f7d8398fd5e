package models

import "gorm.io/gorm"

// ContactMessage is an enquiry sent to a listing's agent through the
// contact form.
type ContactMessage struct {
	gorm.Model
	ListingID uint   `json:"listingID" gorm:"index"`
	Name      string `json:"name" gorm:"size:200;not null"`
	Email     string `json:"email" gorm:"size:200;not null"`
	Phone     string `json:"phone" gorm:"size:50"`
	Message   string `json:"message" gorm:"type:text;not null"`
}
