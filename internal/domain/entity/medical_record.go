package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecord is one clinical note, written by a doctor at the end of an
// encounter. Creating one completes the appointment that triggered it.
type MedicalRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID       uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       uuid.UUID `gorm:"type:uuid;not null" json:"doctor_id"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	DateStart      time.Time `gorm:"not null" json:"date_start"`
	DateEnd        time.Time `gorm:"not null" json:"date_end"`
	DateConfirm    time.Time `gorm:"not null" json:"date_confirm"`
	Complaint      string    `gorm:"type:text" json:"complaint,omitempty"`
	CurrentHistory string    `gorm:"type:text" json:"current_history,omitempty"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history,omitempty"`
	PhysicalExam   string    `gorm:"type:text" json:"physical_exam,omitempty"`
	Diagnostic     string    `gorm:"type:text" json:"diagnostic,omitempty"`
	Conduct        string    `gorm:"type:text" json:"conduct,omitempty"`
	Prescription   string    `gorm:"type:text" json:"prescription,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

func (m *MedicalRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
