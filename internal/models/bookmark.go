package models

// Bookmark links a user to a saved vendor. The pair is unique; a duplicate
// add is treated as success upstream.
type Bookmark struct {
	BaseModel
	UserID   uint `gorm:"not null;uniqueIndex:idx_bookmark_user_vendor" json:"user_id"`
	VendorID uint `gorm:"not null;uniqueIndex:idx_bookmark_user_vendor" json:"vendor_id"`

	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	User   *User   `gorm:"foreignKey:UserID" json:"-"`
}

func (Bookmark) TableName() string { return "bookmarks" }
