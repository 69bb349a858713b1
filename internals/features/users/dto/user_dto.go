// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	m "presensiku_backend/internals/features/users/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email,max=120"`
	Name  string `json:"name" validate:"required,max=120"`

	// Default STUDENT saat kosong
	Role *string `json:"role" validate:"omitempty,oneof=ADMIN STUDENT STAFF"`

	Class    *string `json:"class" validate:"omitempty,max=60"`
	Position *string `json:"position" validate:"omitempty,max=60"`
}

// Update (partial JSON)
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=120"`
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN STUDENT STAFF"`
	Class    *string `json:"class" validate:"omitempty,max=60"`
	Position *string `json:"position" validate:"omitempty,max=60"`
}

// Updates menghasilkan map kolom→nilai untuk partial update GORM.
func (r UpdateUserRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.Email != nil {
		updates["user_email"] = *r.Email
	}
	if r.Name != nil {
		updates["user_name"] = *r.Name
	}
	if r.Role != nil {
		updates["user_role"] = *r.Role
	}
	if r.Class != nil {
		updates["user_class"] = *r.Class
	}
	if r.Position != nil {
		updates["user_position"] = *r.Position
	}
	return updates
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type UserResponse struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Class     *string   `json:"class,omitempty"`
	Position  *string   `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUserModel(u m.UserModel) UserResponse {
	return UserResponse{
		ID:        u.UserID,
		Email:     u.UserEmail,
		Name:      u.UserName,
		Role:      u.UserRole,
		Class:     u.UserClass,
		Position:  u.UserPosition,
		CreatedAt: u.UserCreatedAt,
		UpdatedAt: u.UserUpdatedAt,
	}
}

func FromUserModels(rows []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, FromUserModel(u))
	}
	return out
}
