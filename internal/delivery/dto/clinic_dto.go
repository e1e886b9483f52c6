package dto

import (
	"github.com/google/uuid"
)

type UpdateClinicRequest struct {
	Name    string `json:"name" validate:"required"`
	CNPJ    string `json:"cnpj" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty"`
	Address string `json:"address" validate:"required"`
}

type ClinicResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Phone   string    `json:"phone,omitempty"`
	CNPJ    string    `json:"cnpj"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
	Src     string    `json:"src,omitempty"`
}
