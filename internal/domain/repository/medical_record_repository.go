package repository

import (
	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByPatientAndClinic(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.MedicalRecord, error)
}
