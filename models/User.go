package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber   string         `json:"phoneNumber"`
	Password      string         `json:"-"`
	AvatarURL     string         `json:"avatarURL"`
	Listings      []Listing      `json:"listings" gorm:"foreignKey:CreatorID;references:ID"`
	SavedListings datatypes.JSON `json:"savedListings"`
	IsVerified    *bool          `json:"isVerified"`                                          // verified agent badge
	Role          string         `json:"role" gorm:"type:varchar(20);default:'buyer';index"` // buyer, agent, admin
}

// Custom JSON marshaling so SavedListings comes out as a plain id array.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		SavedListings []uint `json:"savedListings"`
		*Alias
	}{
		SavedListings: []uint{},
		Alias:         (*Alias)(u),
	}

	if u.SavedListings != nil {
		var saved []uint
		if err := json.Unmarshal(u.SavedListings, &saved); err == nil {
			aux.SavedListings = saved
		}
	}

	return json.Marshal(aux)
}
