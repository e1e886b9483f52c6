package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventStatus is the appointment lifecycle state.
type EventStatus string

const (
	StatusCancelado   EventStatus = "cancelado"
	StatusAgendado    EventStatus = "agendado"
	StatusAtendido    EventStatus = "atendido"
	StatusChegada     EventStatus = "chegada"
	StatusAtendimento EventStatus = "atendimento"
	StatusBloqueado   EventStatus = "bloqueado"
)

// Valid reports whether s is one of the known lifecycle states.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusCancelado, StatusAgendado, StatusAtendido, StatusChegada, StatusAtendimento, StatusBloqueado:
		return true
	}
	return false
}

// CanEdit: full edits are only allowed while the appointment is still pending.
func (s EventStatus) CanEdit() bool {
	return s == StatusAgendado
}

// CanReschedule: start/end can move for pending appointments and blocked slots.
func (s EventStatus) CanReschedule() bool {
	return s == StatusAgendado || s == StatusBloqueado
}

// CanDelete: once the patient arrived, is being seen, or was seen, the
// appointment is part of the clinical history and cannot be removed.
func (s EventStatus) CanDelete() bool {
	switch s {
	case StatusChegada, StatusAtendido, StatusAtendimento:
		return false
	}
	return true
}

// WaitStatuses are the states that place an appointment on the wait queue.
var WaitStatuses = []EventStatus{StatusChegada, StatusAtendimento}

// Event is a calendar appointment. Title, phone, plan and patientNasc are
// denormalized copies of the patient record, kept current by the edit and
// patient-update cascades.
type Event struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"clinic_id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null" json:"user_id"`
	PatientID   *uuid.UUID  `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	PatientNasc *time.Time  `json:"patient_nasc,omitempty"`
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Phone       string      `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Plan        string      `gorm:"type:varchar(255)" json:"plan,omitempty"`
	PlanNumber  string      `gorm:"type:varchar(100)" json:"plan_number,omitempty"`
	DoctorID    uuid.UUID   `gorm:"type:uuid;index" json:"doctor_id"`
	Start       time.Time   `gorm:"not null;index" json:"start"`
	End         time.Time   `gorm:"not null" json:"end"`
	AtendStart  *time.Time  `json:"atend_start,omitempty"`
	Type        string      `gorm:"type:varchar(100);not null" json:"type"`
	Status      EventStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Blocked     bool        `json:"blocked"`
	Confirm     *time.Time  `json:"confirm,omitempty"`
	Confirmed   string      `gorm:"type:varchar(2)" json:"confirmed,omitempty"`
	Obs         string      `gorm:"type:text" json:"obs,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
