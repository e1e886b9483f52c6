package usecase

import (
	"context"
	"errors"
	"strings"

	"proclinic-server/internal/converter"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanNameTaken     = errors.New("plan name already in use")
	ErrTussEditForbidden = errors.New("user does not have permission to change tuss values")
)

type PlanUsecase interface {
	List(ctx context.Context, clinicID uuid.UUID) ([]dto.PlanResponse, error)
	Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	Edit(ctx context.Context, clinicID uuid.UUID, req *dto.EditPlanRequest) (*dto.PlanResponse, error)
	EditTuss(ctx context.Context, clinicID uuid.UUID, role string, req *dto.EditTussRequest) (*dto.PlanResponse, error)
}

type planUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	planRepo repository.PlanRepository
}

func NewPlanUsecase(db *gorm.DB, log *logrus.Logger, planRepo repository.PlanRepository) PlanUsecase {
	return &planUsecase{db: db, log: log, planRepo: planRepo}
}

func (u *planUsecase) List(ctx context.Context, clinicID uuid.UUID) ([]dto.PlanResponse, error) {
	plans, err := u.planRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list plans: %+v", err)
		return nil, err
	}
	return converter.PlansToResponses(plans), nil
}

func (u *planUsecase) Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	name := strings.ToLower(strings.TrimSpace(req.Name))

	exist, err := u.planRepo.FindByNameAndClinic(tx, name, clinicID)
	if err != nil {
		u.log.Warnf("Failed to check plan name: %+v", err)
		return nil, err
	}
	if exist != nil {
		return nil, ErrPlanNameTaken
	}

	plan := &entity.Plan{
		ClinicID: clinicID,
		Name:     name,
		Login:    req.Login,
		Password: req.Password,
		Web:      req.Web,
		Src:      req.Src,
		Cod:      req.Cod,
		Tel:      req.Tel,
		Email:    req.Email,
		Obs:      req.Obs,
	}

	if err := u.planRepo.Create(tx, plan); err != nil {
		u.log.Warnf("Failed to create plan: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.PlanToResponse(plan), nil
}

func (u *planUsecase) Edit(ctx context.Context, clinicID uuid.UUID, req *dto.EditPlanRequest) (*dto.PlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	name := strings.ToLower(strings.TrimSpace(req.Name))

	// The name stays unique per clinic, but a plan may keep its own name.
	exist, err := u.planRepo.FindByNameAndClinic(tx, name, clinicID)
	if err != nil {
		u.log.Warnf("Failed to check plan name: %+v", err)
		return nil, err
	}
	if exist != nil && exist.ID != req.ID {
		return nil, ErrPlanNameTaken
	}

	plan, err := u.planRepo.FindByIDAndClinic(tx, req.ID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	plan.Name = name
	plan.Login = req.Login
	plan.Password = req.Password
	plan.Web = req.Web
	plan.Src = req.Src
	plan.Cod = req.Cod
	plan.Tel = req.Tel
	plan.Email = req.Email
	plan.Obs = req.Obs

	if err := u.planRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update plan: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.PlanToResponse(plan), nil
}

// EditTuss updates the price of an existing tuss entry or appends a new one.
// Admin only.
func (u *planUsecase) EditTuss(ctx context.Context, clinicID uuid.UUID, role string, req *dto.EditTussRequest) (*dto.PlanResponse, error) {
	if role != entity.RoleAdmin {
		return nil, ErrTussEditForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.planRepo.FindByIDAndClinic(tx, req.PlanID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	if _, err := plan.UpsertTuss(req.Codigo, req.Procedimento, req.Price); err != nil {
		u.log.Warnf("Failed to upsert tuss entry: %+v", err)
		return nil, err
	}

	if err := u.planRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update plan: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.PlanToResponse(plan), nil
}
