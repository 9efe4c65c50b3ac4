package dto

// CreateCategoryRequest adds a top-level vendor category.
type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=150"`
	Image     string `json:"image" validate:"omitempty,max=255"`
	SortOrder int    `json:"sort_order" validate:"omitempty,min=0"`
}

// UpdateCategoryRequest edits a category.
type UpdateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=150"`
	Image     string `json:"image" validate:"omitempty,max=255"`
	SortOrder int    `json:"sort_order" validate:"omitempty,min=0"`
}

// CreateSubcategoryRequest adds a subcategory under a category.
type CreateSubcategoryRequest struct {
	CategoryID uint   `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=2,max=150"`
	Image      string `json:"image" validate:"omitempty,max=255"`
}

// UpdateSubcategoryRequest edits a subcategory.
type UpdateSubcategoryRequest struct {
	CategoryID uint   `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=2,max=150"`
	Image      string `json:"image" validate:"omitempty,max=255"`
}
