package dto

// UpsertPageRequest writes editable page content by key.
type UpsertPageRequest struct {
	Key     string `json:"key" validate:"required,min=2,max=100"`
	Title   string `json:"title" validate:"required,max=250"`
	Content string `json:"content" validate:"required"`
}

// SubmitFeedbackRequest is a help desk submission.
type SubmitFeedbackRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=150"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=250"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateFeedbackRequest moves feedback through triage.
type UpdateFeedbackRequest struct {
	Status string `json:"status" validate:"required,is-feedback-status"`
	Reply  string `json:"reply" validate:"omitempty,max=5000"`
}

// FeedbackListRequest narrows the admin feedback listing.
type FeedbackListRequest struct {
	Status string `form:"status" validate:"omitempty,is-feedback-status"`
	Search string `form:"search" validate:"omitempty,max=200"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" validate:"omitempty,min=0"`
}
