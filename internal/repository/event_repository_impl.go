package repository

import (
	"errors"

	"proclinic-server/internal/domain/entity"
	domainRepo "proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type eventRepository struct{}

func NewEventRepository() domainRepo.EventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(db *gorm.DB, event *entity.Event) error {
	return db.Create(event).Error
}

func (r *eventRepository) Save(db *gorm.DB, event *entity.Event) error {
	return db.Save(event).Error
}

func (r *eventRepository) Delete(db *gorm.DB, id, clinicID uuid.UUID) error {
	return db.Where("id = ? AND clinic_id = ?", id, clinicID).Delete(&entity.Event{}).Error
}

func (r *eventRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	err := db.Where("id = ? AND clinic_id = ?", id, clinicID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Find(db *gorm.DB, filter domainRepo.EventFilter) ([]entity.Event, error) {
	query := db.Where("clinic_id = ?", filter.ClinicID)

	if filter.DoctorID != uuid.Nil {
		query = query.Where("doctor_id = ?", filter.DoctorID)
	}
	if filter.PatientID != uuid.Nil {
		query = query.Where("patient_id = ?", filter.PatientID)
	}
	if len(filter.Statuses) == 1 {
		query = query.Where("status = ?", filter.Statuses[0])
	} else if len(filter.Statuses) > 1 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.NotStatus != "" {
		query = query.Where("status <> ?", filter.NotStatus)
	}
	if !filter.From.IsZero() {
		query = query.Where("start >= ?", filter.From)
	}
	if !filter.To.IsZero() && !filter.OpenEnded {
		query = query.Where("start <= ?", filter.To)
	}
	if filter.OrderBy != "" {
		query = query.Order(filter.OrderBy)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var events []entity.Event
	err := query.Find(&events).Error
	return events, err
}

func (r *eventRepository) UpdatePatientMirror(db *gorm.DB, clinicID, patientID uuid.UUID, fields map[string]interface{}, skipAtendido bool) error {
	query := db.Model(&entity.Event{}).
		Where("clinic_id = ? AND patient_id = ?", clinicID, patientID)
	if skipAtendido {
		query = query.Where("status <> ?", entity.StatusAtendido)
	}
	return query.Updates(fields).Error
}
