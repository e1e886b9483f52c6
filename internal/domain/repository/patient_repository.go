package repository

import (
	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	Update(db *gorm.DB, patient *entity.Patient) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Patient, error)
	FindByCPFAndClinic(db *gorm.DB, cpf string, clinicID uuid.UUID) (*entity.Patient, error)
	SearchByCPFPrefix(db *gorm.DB, clinicID uuid.UUID, prefix string) ([]entity.Patient, error)
	SearchByNamePrefix(db *gorm.DB, clinicID uuid.UUID, prefix string, limit int) ([]entity.Patient, error)
	SearchByNameAndCPFPrefix(db *gorm.DB, clinicID uuid.UUID, namePrefix, cpfPrefix string, limit int) ([]entity.Patient, error)
}
