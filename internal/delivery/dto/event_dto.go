package dto

import (
	"time"

	"github.com/google/uuid"
)

// Date/time request fields travel as strings and are parsed in the usecases:
// RFC 3339 for instants, YYYY-MM-DD accepted for dates.

type CreateEventRequest struct {
	PatientID   *uuid.UUID `json:"patient_id"`
	PatientNasc string     `json:"patient_nasc" validate:"omitempty"`
	Title       string     `json:"title" validate:"required"`
	Phone       string     `json:"phone"`
	Plan        string     `json:"plan"`
	PlanNumber  string     `json:"plan_number"`
	Doctor      uuid.UUID  `json:"doctor" validate:"required"`
	Start       string     `json:"start" validate:"required"`
	End         string     `json:"end" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Status      string     `json:"status" validate:"required,oneof=cancelado agendado atendido chegada atendimento bloqueado"`
	Obs         string     `json:"obs"`
}

type UpdateEventRequest struct {
	ID          uuid.UUID  `json:"id" validate:"required"`
	PatientID   *uuid.UUID `json:"patient_id"`
	PatientNasc string     `json:"patient_nasc" validate:"omitempty"`
	Title       string     `json:"title" validate:"required"`
	Phone       string     `json:"phone"`
	Plan        string     `json:"plan"`
	PlanNumber  string     `json:"plan_number"`
	Doctor      uuid.UUID  `json:"doctor" validate:"required"`
	Start       string     `json:"start" validate:"required"`
	End         string     `json:"end" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Status      string     `json:"status" validate:"required,oneof=cancelado agendado atendido chegada atendimento bloqueado"`
	Blocked     bool       `json:"blocked"`
	Obs         string     `json:"obs"`
}

type DropEventRequest struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Start string    `json:"start" validate:"required"`
	End   string    `json:"end" validate:"required"`
}

type ChangeStatusRequest struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Status  string    `json:"status" validate:"required,oneof=cancelado agendado atendido chegada atendimento bloqueado"`
	Confirm string    `json:"confirm" validate:"omitempty"`
}

type ChangeConfirmedRequest struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Confirmed string    `json:"confirmed" validate:"required,oneof=0 1 3"`
}

// EventResponse is the full event payload.
type EventResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	PatientNasc *time.Time `json:"patient_nasc,omitempty"`
	Title       string     `json:"title"`
	Phone       string     `json:"phone,omitempty"`
	Plan        string     `json:"plan,omitempty"`
	PlanNumber  string     `json:"plan_number,omitempty"`
	Doctor      uuid.UUID  `json:"doctor"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	AtendStart  *time.Time `json:"atend_start,omitempty"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Blocked     bool       `json:"blocked"`
	Confirm     *time.Time `json:"confirm,omitempty"`
	Confirmed   string     `json:"confirmed,omitempty"`
	Obs         string     `json:"obs,omitempty"`
}

// AgendaEventResponse is the calendar projection: no creator, no clinic, no
// encounter timestamps.
type AgendaEventResponse struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	PatientNasc *time.Time `json:"patient_nasc,omitempty"`
	Title       string     `json:"title"`
	Phone       string     `json:"phone,omitempty"`
	Plan        string     `json:"plan,omitempty"`
	PlanNumber  string     `json:"plan_number,omitempty"`
	Doctor      uuid.UUID  `json:"doctor"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Blocked     bool       `json:"blocked"`
	Confirmed   string     `json:"confirmed,omitempty"`
	Obs         string     `json:"obs,omitempty"`
}

// WaitEventResponse is the wait-queue projection.
type WaitEventResponse struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	PatientNasc *time.Time `json:"patient_nasc,omitempty"`
	Title       string     `json:"title"`
	Plan        string     `json:"plan,omitempty"`
	Doctor      uuid.UUID  `json:"doctor"`
	Start       time.Time  `json:"start"`
	AtendStart  *time.Time `json:"atend_start,omitempty"`
	Confirm     *time.Time `json:"confirm,omitempty"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
}

// DashboardEventResponse carries only what the dashboard charts need.
type DashboardEventResponse struct {
	Doctor      uuid.UUID  `json:"doctor"`
	Status      string     `json:"status"`
	Type        string     `json:"type"`
	Plan        string     `json:"plan,omitempty"`
	Confirmed   string     `json:"confirmed,omitempty"`
	Start       time.Time  `json:"start"`
	PatientNasc *time.Time `json:"patient_nasc,omitempty"`
}

// HistoryEventResponse is the completed-appointments projection.
type HistoryEventResponse struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	PatientNasc *time.Time `json:"patient_nasc,omitempty"`
	Title       string     `json:"title"`
	Plan        string     `json:"plan,omitempty"`
	Doctor      uuid.UUID  `json:"doctor"`
	AtendStart  *time.Time `json:"atend_start,omitempty"`
	Type        string     `json:"type"`
}

// ReportEventResponse is one row of the period report.
type ReportEventResponse struct {
	Plan   string     `json:"plan,omitempty"`
	Start  time.Time  `json:"start"`
	Doctor *uuid.UUID `json:"doctor,omitempty"`
}
