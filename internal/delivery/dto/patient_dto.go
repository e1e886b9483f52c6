package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	Name       string `json:"name" validate:"required"`
	Nasc       string `json:"nasc" validate:"required"`
	CPF        string `json:"cpf" validate:"omitempty,len=11"`
	Mother     string `json:"mother" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Plan       string `json:"plan"`
	PlanNumber string `json:"plan_number"`
	Gender     string `json:"gender" validate:"required,oneof=mas fem"`
}

type UpdatePatientRequest struct {
	PatientID     uuid.UUID `json:"patient_id" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Nasc          string    `json:"nasc" validate:"required"`
	CPF           string    `json:"cpf" validate:"omitempty,len=11"`
	Mother        string    `json:"mother"`
	Phone         string    `json:"phone" validate:"required"`
	Email         string    `json:"email" validate:"omitempty,email"`
	Plan          string    `json:"plan" validate:"required"`
	PlanNumber    string    `json:"plan_number" validate:"required"`
	Gender        string    `json:"gender" validate:"omitempty,oneof=mas fem"`
	CEP           string    `json:"cep"`
	Address       string    `json:"address"`
	AddressNumber string    `json:"address_number"`
	Neighborhood  string    `json:"neighborhood"`
	City          string    `json:"city"`
	State         string    `json:"state"`
}

type SearchPatientsListRequest struct {
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

type PatientResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Nasc          time.Time `json:"nasc"`
	CPF           string    `json:"cpf,omitempty"`
	Mother        string    `json:"mother"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Plan          string    `json:"plan,omitempty"`
	PlanNumber    string    `json:"plan_number,omitempty"`
	Gender        string    `json:"gender"`
	Address       string    `json:"address,omitempty"`
	AddressNumber string    `json:"address_number,omitempty"`
	Neighborhood  string    `json:"neighborhood,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	CEP           string    `json:"cep,omitempty"`
}

// PatientSearchResponse is the quick-search projection: no mother, no gender.
type PatientSearchResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Nasc       time.Time `json:"nasc"`
	CPF        string    `json:"cpf,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Plan       string    `json:"plan,omitempty"`
	PlanNumber string    `json:"plan_number,omitempty"`
}
