package response

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	IsGuest bool      `json:"is_guest"`
}

func FromUserView(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{ID: v.ID, Email: v.Email, Role: v.Role, IsGuest: v.IsGuest}
}
