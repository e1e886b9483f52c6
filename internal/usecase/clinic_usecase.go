package usecase

import (
	"context"
	"errors"

	"proclinic-server/internal/converter"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCNPJAlreadyExists = errors.New("cnpj already in use by another clinic")

type ClinicUsecase interface {
	Get(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
	Update(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error)
}

type clinicUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clinicRepo repository.ClinicRepository
}

func NewClinicUsecase(db *gorm.DB, log *logrus.Logger, clinicRepo repository.ClinicRepository) ClinicUsecase {
	return &clinicUsecase{db: db, log: log, clinicRepo: clinicRepo}
}

func (u *clinicUsecase) Get(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) Update(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicRequest) (*dto.ClinicResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	clinic.Name = req.Name
	clinic.CNPJ = req.CNPJ
	clinic.Phone = req.Phone
	clinic.Address = req.Address

	if err := u.clinicRepo.Update(tx, clinic); err != nil {
		if isDuplicateKeyError(err, "cnpj") {
			return nil, ErrCNPJAlreadyExists
		}
		u.log.Warnf("Failed to update clinic: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}
