package dto

import (
	"github.com/google/uuid"
)

// LoginRequest mirrors the login form constraints: short alphanumeric login,
// short password.
type LoginRequest struct {
	Login    string `json:"login" validate:"required,alphanumspace,min=3,max=10"`
	Password string `json:"password" validate:"required,min=3,max=8"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Login    string `json:"login" validate:"required,alphanumspace,min=3,max=10"`
	Password string `json:"password" validate:"required,min=3,max=8"`
	Role     string `json:"role" validate:"required,oneof=recep admin doctor"`
	CRM      string `json:"crm" validate:"omitempty,len=8"`
	CBO      string `json:"cbo" validate:"omitempty,len=6"`
}

type UpdateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Login       string `json:"login" validate:"required,alphanumspace,min=3,max=10"`
	OldPassword string `json:"old_password" validate:"omitempty,min=3,max=8"`
	NewPassword string `json:"new_password" validate:"omitempty,min=3,max=8"`
	CRM         string `json:"crm" validate:"omitempty,len=8"`
	CBO         string `json:"cbo" validate:"omitempty,len=6"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Login string    `json:"login,omitempty"`
	Role  string    `json:"role"`
	CRM   string    `json:"crm,omitempty"`
	CBO   string    `json:"cbo,omitempty"`
}

// DoctorResponse is the doctor projection used by pickers and combo views.
type DoctorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	CRM  string    `json:"crm,omitempty"`
	CBO  string    `json:"cbo,omitempty"`
	Role string    `json:"role,omitempty"`
}

type LoginResponse struct {
	Auth   bool            `json:"auth"`
	User   UserResponse    `json:"user"`
	Token  string          `json:"token"`
	Clinic *ClinicResponse `json:"clinic"`
}

type UpdateUserResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
