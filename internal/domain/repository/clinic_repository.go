package repository

import (
	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
}
