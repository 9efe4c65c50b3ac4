package dto

// BookmarkRequest toggles a vendor in the caller's bookmark list.
type BookmarkRequest struct {
	VendorID uint `json:"vendor_id" validate:"required"`
}

// RateVendorRequest writes or replaces the caller's rating for a vendor.
type RateVendorRequest struct {
	VendorID uint    `json:"vendor_id" validate:"required"`
	Rating   float64 `json:"rating" validate:"required,min=1,max=5"`
	Review   string  `json:"review" validate:"omitempty,max=2000"`
}

// DeviceTokenRequest registers the caller's push token.
type DeviceTokenRequest struct {
	DeviceToken string `json:"device_token" validate:"required"`
}

// UpdateProfileRequest edits the caller's user profile.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=150"`
	City  string `json:"city" validate:"omitempty,max=100"`
	State string `json:"state" validate:"omitempty,max=100"`
}
