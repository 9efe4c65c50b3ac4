package models

// User is a mobile/web client account. DeviceToken is overwritten on every
// login that supplies one; it stays nullable for users without push.
type User struct {
	BaseModel
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	Mobile       string  `gorm:"size:15;uniqueIndex;not null" json:"mobile"`
	PasswordHash string  `gorm:"column:password;not null" json:"-"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	DeviceToken  *string `json:"device_token,omitempty"`
}

func (User) TableName() string { return "users" }
