package repository

import (
	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(db *gorm.DB, plan *entity.Plan) error
	Update(db *gorm.DB, plan *entity.Plan) error
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Plan, error)
	FindByNameAndClinic(db *gorm.DB, name string, clinicID uuid.UUID) (*entity.Plan, error)
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Plan, error)
}
