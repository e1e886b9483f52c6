package repository

import (
	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(db *gorm.DB, document *entity.Document) error
	Update(db *gorm.DB, document *entity.Document) error
	Delete(db *gorm.DB, id, clinicID uuid.UUID) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Document, error)
	FindByNameAndClinic(db *gorm.DB, name string, clinicID uuid.UUID) (*entity.Document, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Document, error)
}
