package models

// Admin is a dashboard operator. Sub admins carry a comma-separated list of
// allotted sections; super admins leave it empty.
type Admin struct {
	BaseModel
	Role            AdminRole `gorm:"type:varchar(20);not null" json:"role"`
	Name            string    `gorm:"not null" json:"name"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Mobile          string    `gorm:"size:15;not null" json:"mobile"`
	PasswordHash    string    `gorm:"column:password;not null" json:"-"`
	AllottedSection string    `json:"allotted_section"`
}

func (Admin) TableName() string { return "admins" }
