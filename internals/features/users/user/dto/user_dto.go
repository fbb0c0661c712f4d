package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "tpims_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	UserName string            `json:"user_name" validate:"required,min=3,max=50"`
	FullName string            `json:"full_name" validate:"omitempty,max=100"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=8"`
	Role     string            `json:"role" validate:"omitempty,oneof=admin user"`
	Privacy  datatypes.JSONMap `json:"privacy"`
}

type UpdateUserRequest struct {
	UserName string            `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName string            `json:"full_name" validate:"omitempty,max=100"`
	Role     string            `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive *bool             `json:"is_active"`
	Privacy  datatypes.JSONMap `json:"privacy"`
}

type UserResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserName  string            `json:"user_name"`
	FullName  string            `json:"full_name,omitempty"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	IsActive  bool              `json:"is_active"`
	Privacy   datatypes.JSONMap `json:"privacy,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func FromUserModel(u m.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Privacy:   u.Privacy,
		CreatedAt: u.CreatedAt,
	}
}

func FromUserModels(rows []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromUserModel(row))
	}
	return out
}
