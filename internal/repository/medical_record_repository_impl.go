package repository

import (
	"proclinic-server/internal/domain/entity"
	domainRepo "proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByPatientAndClinic(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Where("patient_id = ? AND clinic_id = ?", patientID, clinicID).
		Order("date desc").
		Find(&records).Error
	return records, err
}
