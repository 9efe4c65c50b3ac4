package dto

// LoginRequest is the shared credential payload for all login endpoints.
// DeviceToken is only honored on the user login path.
type LoginRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DeviceToken string `json:"device_token"`
}

// VendorLoginRequest logs a vendor in by contact number.
type VendorLoginRequest struct {
	ContactNumber string `json:"contact_number" validate:"required,is-mobile"`
	Password      string `json:"password" validate:"required,min=6"`
}

// LoginResponse returns the bearer token and the actor it identifies.
type LoginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	Actor interface{} `json:"actor"`
}

// RegisterUserRequest creates an app user account.
type RegisterUserRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required,is-mobile"`
	Password    string `json:"password" validate:"required,min=6"`
	City        string `json:"city" validate:"max=100"`
	State       string `json:"state" validate:"max=100"`
	DeviceToken string `json:"device_token"`
}

// ChangePasswordRequest updates the caller's own password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
