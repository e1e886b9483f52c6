package repository

import (
	"errors"

	"proclinic-server/internal/domain/entity"
	domainRepo "proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type planRepository struct{}

func NewPlanRepository() domainRepo.PlanRepository {
	return &planRepository{}
}

func (r *planRepository) Create(db *gorm.DB, plan *entity.Plan) error {
	return db.Create(plan).Error
}

func (r *planRepository) Update(db *gorm.DB, plan *entity.Plan) error {
	return db.Save(plan).Error
}

func (r *planRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Plan, error) {
	var plan entity.Plan
	err := db.Where("id = ? AND clinic_id = ?", id, clinicID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindByNameAndClinic(db *gorm.DB, name string, clinicID uuid.UUID) (*entity.Plan, error) {
	var plan entity.Plan
	err := db.Where("name = ? AND clinic_id = ?", name, clinicID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Plan, error) {
	var plans []entity.Plan
	err := db.Where("clinic_id = ?", clinicID).Order("name asc").Find(&plans).Error
	return plans, err
}
