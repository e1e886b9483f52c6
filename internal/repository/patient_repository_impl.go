package repository

import (
	"errors"
	"strings"

	"proclinic-server/internal/domain/entity"
	domainRepo "proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ? AND clinic_id = ?", id, clinicID).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByCPFAndClinic(db *gorm.DB, cpf string, clinicID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("cpf = ? AND clinic_id = ?", cpf, clinicID).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Names and cpf are stored normalized, so a lowercased LIKE prefix match is
// equivalent to the case-insensitive anchored regex the API promises.
func prefixPattern(prefix string) string {
	return strings.ToLower(prefix) + "%"
}

func (r *patientRepository) SearchByCPFPrefix(db *gorm.DB, clinicID uuid.UUID, prefix string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("clinic_id = ? AND cpf LIKE ?", clinicID, prefixPattern(prefix)).
		Find(&patients).Error
	return patients, err
}

func (r *patientRepository) SearchByNamePrefix(db *gorm.DB, clinicID uuid.UUID, prefix string, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("clinic_id = ? AND name LIKE ?", clinicID, prefixPattern(prefix)).
		Order("name asc").
		Limit(limit).
		Find(&patients).Error
	return patients, err
}

func (r *patientRepository) SearchByNameAndCPFPrefix(db *gorm.DB, clinicID uuid.UUID, namePrefix, cpfPrefix string, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("clinic_id = ? AND name LIKE ? AND cpf LIKE ?", clinicID, prefixPattern(namePrefix), prefixPattern(cpfPrefix)).
		Order("name asc").
		Limit(limit).
		Find(&patients).Error
	return patients, err
}
