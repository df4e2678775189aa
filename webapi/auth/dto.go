package auth

// LoginRequest is the body for checking the shared password. A missing
// password field is treated as an empty password, not a validation error.
type LoginRequest struct {
	Password string `json:"password"`
}
