package models

import "time"

// PageContent is editable static content keyed by page name
// ("about", "terms", "privacy").
type PageContent struct {
	BaseModel
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:longtext" json:"content"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PageContent) TableName() string { return "page_contents" }

// Slider is a home-screen banner image.
type Slider struct {
	BaseModel
	ImagePath string `gorm:"not null" json:"image_path"`
}

func (Slider) TableName() string { return "app_sliders" }

// Feedback is a help/contact submission. UserID is optional so anonymous
// visitors can write in.
type Feedback struct {
	BaseModel
	UserID  *uint  `json:"user_id,omitempty"`
	Name    string `gorm:"size:150;not null" json:"name"`
	Email   string `gorm:"size:200;not null" json:"email"`
	Subject string `gorm:"size:250;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"type:varchar(20);default:'new'" json:"status"`
	Reply   string `gorm:"type:text" json:"reply,omitempty"`
}

func (Feedback) TableName() string { return "help_feedback" }
