package dto

import "cityinbox_backend/internal/models"

// VendorSearchRequest is the public/admin vendor listing filter. All
// fields are optional; equality filters combine with AND while the
// search term matches any of the text columns.
type VendorSearchRequest struct {
	Source        string `form:"source" validate:"omitempty,is-vendor-origin"`
	Search        string `form:"search" validate:"omitempty,max=200"`
	SalesID       *uint  `form:"sales_id"`
	DateFrom      string `form:"date_from" validate:"omitempty,is-date"`
	DateTo        string `form:"date_to" validate:"omitempty,is-date"`
	City          string `form:"city" validate:"omitempty,max=100"`
	State         string `form:"state" validate:"omitempty,max=100"`
	CategoryID    *uint  `form:"category_id"`
	SubcategoryID *uint  `form:"subcategory_id"`
	VerifiedOnly  bool   `form:"verified_only"`
}

// CreateVendorRequest registers a vendor. The creating path (admin
// panel, sales executive app, vendor self-signup) is derived from the
// authenticated principal, not from the body.
type CreateVendorRequest struct {
	ShopName      string   `json:"shop_name" validate:"required,min=2,max=200"`
	Address       string   `json:"address" validate:"required,max=500"`
	City          string   `json:"city" validate:"required,max=100"`
	State         string   `json:"state" validate:"required,max=100"`
	ContactNumber string   `json:"contact_number" validate:"required,is-mobile"`
	Facilities    string   `json:"facilities" validate:"max=1000"`
	CategoryID    *uint    `json:"category_id"`
	SubcategoryID *uint    `json:"subcategory_id"`
	Password      string   `json:"password" validate:"omitempty,min=6"`
	Images        []string `json:"images"`
}

// UpdateVendorRequest is the vendor-facing profile update. Submitting it
// puts the profile back into the unverified queue.
type UpdateVendorRequest struct {
	ShopName      string   `json:"shop_name" validate:"omitempty,min=2,max=200"`
	Address       string   `json:"address" validate:"omitempty,max=500"`
	City          string   `json:"city" validate:"omitempty,max=100"`
	State         string   `json:"state" validate:"omitempty,max=100"`
	ContactNumber string   `json:"contact_number" validate:"omitempty,is-mobile"`
	Facilities    string   `json:"facilities" validate:"omitempty,max=1000"`
	CategoryID    *uint    `json:"category_id"`
	SubcategoryID *uint    `json:"subcategory_id"`
	Images        []string `json:"images"`
}

// VerifyVendorRequest flips a vendor's verified flag from the admin panel.
type VerifyVendorRequest struct {
	Verified bool `json:"verified"`
}

// VendorResponse is a vendor row with its rating aggregate and, for an
// authenticated user, the bookmark flag.
type VendorResponse struct {
	Vendor        *models.Vendor `json:"vendor"`
	RatingAverage float64        `json:"rating_average"`
	RatingCount   int64          `json:"rating_count"`
	Bookmarked    bool           `json:"bookmarked"`
}
