package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMedicalRecordRequest struct {
	EventID        uuid.UUID `json:"event_id" validate:"required"`
	PatientID      uuid.UUID `json:"patient_id" validate:"required"`
	Date           string    `json:"date"`
	DateStart      string    `json:"date_start" validate:"required"`
	DateEnd        string    `json:"date_end" validate:"required"`
	DateConfirm    string    `json:"date_confirm" validate:"required"`
	Complaint      string    `json:"complaint"`
	CurrentHistory string    `json:"current_history"`
	MedicalHistory string    `json:"medical_history"`
	PhysicalExam   string    `json:"physical_exam"`
	Diagnostic     string    `json:"diagnostic"`
	Conduct        string    `json:"conduct"`
	Prescription   string    `json:"prescription"`
}

type InitAtendRequest struct {
	EventID    uuid.UUID `json:"event_id" validate:"required"`
	AtendStart string    `json:"atend_start" validate:"required"`
}

type MedicalRecordResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	DoctorID       uuid.UUID `json:"doctor_id"`
	Date           time.Time `json:"date"`
	DateStart      time.Time `json:"date_start"`
	DateEnd        time.Time `json:"date_end"`
	DateConfirm    time.Time `json:"date_confirm"`
	Complaint      string    `json:"complaint,omitempty"`
	CurrentHistory string    `json:"current_history,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
	PhysicalExam   string    `json:"physical_exam,omitempty"`
	Diagnostic     string    `json:"diagnostic,omitempty"`
	Conduct        string    `json:"conduct,omitempty"`
	Prescription   string    `json:"prescription,omitempty"`
}

// RecepMedicalRecordResponse is the receptionist projection: encounter
// timestamps only, no clinical content.
type RecepMedicalRecordResponse struct {
	DoctorID    uuid.UUID `json:"doctor_id"`
	Date        time.Time `json:"date"`
	DateStart   time.Time `json:"date_start"`
	DateEnd     time.Time `json:"date_end"`
	DateConfirm time.Time `json:"date_confirm"`
}
