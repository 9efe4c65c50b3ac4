package dto

// CreateSubAdminRequest adds a section-scoped sub admin.
type CreateSubAdminRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Mobile          string `json:"mobile" validate:"required,is-mobile"`
	Password        string `json:"password" validate:"required,min=6"`
	AllottedSection string `json:"allotted_section" validate:"required,max=200"`
}

// UpdateSubAdminRequest edits a sub admin's profile or section.
type UpdateSubAdminRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2,max=150"`
	Mobile          string `json:"mobile" validate:"omitempty,is-mobile"`
	AllottedSection string `json:"allotted_section" validate:"omitempty,max=200"`
	Password        string `json:"password" validate:"omitempty,min=6"`
}
