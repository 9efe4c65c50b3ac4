package models

import "time"

// VendorRating holds one rating per (user, vendor) pair. A second submission
// from the same user overwrites the row and refreshes UpdatedAt.
type VendorRating struct {
	BaseModel
	UserID    uint      `gorm:"not null;uniqueIndex:idx_rating_user_vendor" json:"user_id"`
	VendorID  uint      `gorm:"not null;uniqueIndex:idx_rating_user_vendor" json:"vendor_id"`
	Rating    float64   `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Review    string    `gorm:"type:text" json:"review,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"-"`
}

func (VendorRating) TableName() string { return "vendor_ratings" }
