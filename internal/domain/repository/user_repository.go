package repository

import (
	"proclinic-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	Update(db *gorm.DB, user *entity.User) error
	FindByLogin(db *gorm.DB, login string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.User, error)
	LoginTaken(db *gorm.DB, login string, excludeID uuid.UUID) (bool, error)
	FindDoctorsByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
}
