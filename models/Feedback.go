package models

import "gorm.io/gorm"

// Feedback represents user-submitted feedback for the app
type Feedback struct {
	gorm.Model
	UserID  uint   `json:"userID" gorm:"index"`
	Name    string `json:"name" gorm:"size:200"`
	Email   string `json:"email" gorm:"size:200"`
	Type    string `json:"type" gorm:"size:20;index"` // general, bug, feature
	Rating  int    `json:"rating"`                    // 1-5
	Message string `json:"message" gorm:"type:text;not null"`
}
