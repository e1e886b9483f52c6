package repository

import (
	"time"

	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventFilter narrows event queries. Zero values mean "not filtered".
type EventFilter struct {
	ClinicID  uuid.UUID
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	Statuses  []entity.EventStatus
	NotStatus entity.EventStatus
	From      time.Time
	To        time.Time
	OpenEnded bool // From only, no upper bound
	OrderBy   string
	Limit     int
}

type EventRepository interface {
	Create(db *gorm.DB, event *entity.Event) error
	Save(db *gorm.DB, event *entity.Event) error
	Delete(db *gorm.DB, id, clinicID uuid.UUID) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Event, error)
	Find(db *gorm.DB, filter EventFilter) ([]entity.Event, error)
	// UpdatePatientMirror refreshes the denormalized patient fields on the
	// patient's events. When skipAtendido is set, completed appointments keep
	// their historical copy.
	UpdatePatientMirror(db *gorm.DB, clinicID, patientID uuid.UUID, fields map[string]interface{}, skipAtendido bool) error
}
