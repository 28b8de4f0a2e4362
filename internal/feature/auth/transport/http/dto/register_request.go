// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// It uses Gin's binding tags for validation (required name, email format,
// password length), so invalid input is rejected before any store access.
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// registerMessages maps validated fields to their wire error messages.
var registerMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Please use a valid email address",
	"Password": "Password must be at least 6 characters in length",
}

// Messages translates a binding error on RegisterReq into wire error items.
func (RegisterReq) Messages(err error) []ErrorItem {
	return translate(err, registerMessages)
}
