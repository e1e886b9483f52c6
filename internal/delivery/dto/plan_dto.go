package dto

import (
	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	Name     string `json:"name" validate:"required,alphanumspace,min=3"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Web      string `json:"web"`
	Src      string `json:"src"`
	Cod      string `json:"cod"`
	Tel      string `json:"tel"`
	Email    string `json:"email" validate:"omitempty,email"`
	Obs      string `json:"obs"`
}

type EditPlanRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required,alphanumspace,min=3"`
	Login    string    `json:"login"`
	Password string    `json:"password"`
	Web      string    `json:"web"`
	Src      string    `json:"src"`
	Cod      string    `json:"cod"`
	Tel      string    `json:"tel"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Obs      string    `json:"obs"`
}

type EditTussRequest struct {
	PlanID       uuid.UUID `json:"plan_id" validate:"required"`
	Codigo       string    `json:"codigo" validate:"required"`
	Procedimento string    `json:"procedimento" validate:"required"`
	Price        float64   `json:"price" validate:"required"`
}

type PlanResponse struct {
	ID       uuid.UUID          `json:"id"`
	Name     string             `json:"name"`
	Login    string             `json:"login,omitempty"`
	Password string             `json:"password,omitempty"`
	Web      string             `json:"web,omitempty"`
	Src      string             `json:"src,omitempty"`
	Cod      string             `json:"cod,omitempty"`
	Tel      string             `json:"tel,omitempty"`
	Email    string             `json:"email,omitempty"`
	Obs      string             `json:"obs,omitempty"`
	Tuss     []entity.TussEntry `json:"tuss"`
}
