package dto

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"auth_backend/internal/feature/auth/domain/entity"
)

// ErrorItem is one entry of the stable error list every failure response
// carries, so clients can always render the first message.
type ErrorItem struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// NewErrorResponse builds an ErrorResponse from plain messages.
func NewErrorResponse(msgs ...string) ErrorResponse {
	items := make([]ErrorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ErrorItem{Msg: m})
	}
	return ErrorResponse{Errors: items}
}

// TokenResponse is the success body of register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the success body of /auth/me. The password hash is not part
// of this shape at all.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user entity to its wire representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// translate converts go-playground validation failures into the wire messages
// registered for each field. Non-validation errors (malformed JSON, wrong
// types) collapse into a single generic item.
func translate(err error, messages map[string]string) []ErrorItem {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorItem{{Msg: "Invalid request body"}}
	}
	items := make([]ErrorItem, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			items = append(items, ErrorItem{Msg: msg})
			continue
		}
		items = append(items, ErrorItem{Msg: "Invalid value for " + fe.Field()})
	}
	return items
}
