package dto

import "cityinbox_backend/internal/repositories"

// CreateNotificationRequest broadcasts a message to every current user.
type CreateNotificationRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Message string `json:"message" validate:"required,min=1"`
	Image   string `json:"image" validate:"omitempty,max=255"`
}

// UpdateNotificationRequest edits a broadcast in place and re-pushes it.
type UpdateNotificationRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Message string `json:"message" validate:"required,min=1"`
	Image   string `json:"image" validate:"omitempty,max=255"`
}

// MarkSeenRequest asks to mark up to Limit unseen notifications as seen.
// Zero means the server default.
type MarkSeenRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// MarkSeenResponse reports how many rows were actually marked.
type MarkSeenResponse struct {
	Marked int64 `json:"marked"`
}

// NotificationFeedResponse is a user's notification inbox.
type NotificationFeedResponse struct {
	Notifications []repositories.UserNotificationView `json:"notifications"`
	UnseenCount   int64                               `json:"unseen_count"`
}

// DispatchSummary reports per-token outcomes of a push round.
type DispatchSummary struct {
	Recipients int `json:"recipients"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}
