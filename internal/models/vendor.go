package models

import (
	"gorm.io/datatypes"
)

// Vendor is a directory listing. Images holds an ordered list of stored
// filenames; edits append, they never reorder. Verification starts false and
// is reset to false by public-path updates.
type Vendor struct {
	BaseModel
	ShopName         string                      `gorm:"not null" json:"shop_name"`
	Address          string                      `gorm:"type:text;not null" json:"address"`
	City             string                      `gorm:"size:100" json:"city"`
	State            string                      `gorm:"size:100" json:"state"`
	ContactNumber    string                      `gorm:"size:15;uniqueIndex;not null" json:"contact_number"`
	Facilities       string                      `gorm:"type:text" json:"facilities"`
	CategoryID       *uint                       `json:"category_id"`
	SubcategoryID    *uint                       `json:"subcategory_id"`
	Verified         bool                        `gorm:"default:false" json:"verified"`
	CreatedBy        VendorOrigin                `gorm:"type:varchar(20);default:'self'" json:"created_by"`
	SalesExecutiveID *uint                       `json:"sales_executive_id,omitempty"`
	Images           datatypes.JSONSlice[string] `json:"images"`
	PasswordHash     string                      `gorm:"column:password;not null" json:"-"`

	Category       *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategory    *Subcategory    `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	SalesExecutive *SalesExecutive `gorm:"foreignKey:SalesExecutiveID" json:"sales_executive,omitempty"`
}

func (Vendor) TableName() string { return "vendors" }
