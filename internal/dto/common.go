package dto

// SuccessResponse is the envelope for endpoints that return no payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// IDResponse returns just the identifier of a created record.
type IDResponse struct {
	ID uint `json:"id"`
}

// CountResponse returns a single counter value.
type CountResponse struct {
	Count int64 `json:"count"`
}
