package models

import "time"

// Notification is a broadcast message. Fan-out rows are snapshotted at
// creation time; admin edits change title/message/image in place.
type Notification struct {
	BaseModel
	Title   string `gorm:"size:255;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	Image   string `gorm:"size:255" json:"image,omitempty"`
}

func (Notification) TableName() string { return "notifications" }

// UserNotification is one recipient's copy of a notification. Users created
// after the notification existed never get a row for it.
type UserNotification struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	NotificationID uint       `gorm:"not null;index" json:"notification_id"`
	Seen           bool       `gorm:"default:false" json:"seen"`
	SeenAt         *time.Time `json:"seen_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Notification *Notification `gorm:"foreignKey:NotificationID" json:"notification,omitempty"`
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
}

func (UserNotification) TableName() string { return "user_notifications" }
