package models

// Category sort order: 0 means lowest priority and sorts after all non-zero
// values; non-zero values sort ascending.
type Category struct {
	BaseModel
	Name      string `gorm:"not null" json:"name"`
	Image     string `json:"image,omitempty"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

func (Category) TableName() string { return "categories" }

// Subcategory belongs to exactly one category.
type Subcategory struct {
	BaseModel
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Name       string `gorm:"not null" json:"name"`
	Image      string `json:"image,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Subcategory) TableName() string { return "subcategories" }
