package usecase

import (
	"context"
	"errors"
	"strings"

	"proclinic-server/internal/converter"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/domain/repository"
	"proclinic-server/internal/infrastructure/cache"
	"proclinic-server/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginAlreadyExists = errors.New("login already in use by another user")
	ErrMissingDoctorCodes = errors.New("crm and cbo are required for doctors")
	ErrUserNotFound       = errors.New("user not found")
	ErrClinicNotFound     = errors.New("clinic not found")
	ErrWrongOldPassword   = errors.New("current password does not match")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	CreateUser(ctx context.Context, clinicID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, role string, req *dto.UpdateUserRequest) (*dto.UpdateUserResponse, error)
	GetDoctors(ctx context.Context, clinicID uuid.UUID) ([]dto.DoctorResponse, error)
	GetUsers(ctx context.Context) ([]dto.UserResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	clinicRepo repository.ClinicRepository
	jwtService *jwt.JWTService
	sessions   cache.SessionStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	clinicRepo repository.ClinicRepository,
	jwtService *jwt.JWTService,
	sessions cache.SessionStore,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		clinicRepo: clinicRepo,
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	db := u.db.WithContext(ctx)

	login := strings.ToLower(strings.TrimSpace(req.Login))

	user, err := u.userRepo.FindByLogin(db, login)
	if err != nil {
		u.log.Warnf("Failed to find user by login: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	clinic, err := u.clinicRepo.FindByID(db, user.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Name, user.Login, user.Role, user.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Save(ctx, user.ID.String(), tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Auth:   true,
		User:   *converter.UserToResponse(user),
		Token:  token,
		Clinic: converter.ClinicToResponse(clinic),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return u.sessions.Revoke(ctx, userID.String(), tokenID)
}

func (u *authUsecase) CreateUser(ctx context.Context, clinicID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if req.Role == entity.RoleDoctor && (req.CRM == "" || req.CBO == "") {
		return nil, ErrMissingDoctorCodes
	}

	login := strings.ToLower(strings.TrimSpace(req.Login))

	taken, err := u.userRepo.LoginTaken(tx, login, uuid.Nil)
	if err != nil {
		u.log.Warnf("Failed to check login: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrLoginAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		ClinicID: clinicID,
		Name:     req.Name,
		Login:    login,
		Password: string(hashedPassword),
		Role:     req.Role,
		CRM:      req.CRM,
		CBO:      req.CBO,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "login") {
			return nil, ErrLoginAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) UpdateUser(ctx context.Context, userID uuid.UUID, role string, req *dto.UpdateUserRequest) (*dto.UpdateUserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if role == entity.RoleDoctor && (req.CRM == "" || req.CBO == "") {
		return nil, ErrMissingDoctorCodes
	}

	login := strings.ToLower(strings.TrimSpace(req.Login))

	taken, err := u.userRepo.LoginTaken(tx, login, userID)
	if err != nil {
		u.log.Warnf("Failed to check login: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrLoginAlreadyExists
	}

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.OldPassword != "" && req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrWrongOldPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	user.Name = req.Name
	user.Login = login
	user.CRM = req.CRM
	user.CBO = req.CBO

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "login") {
			return nil, ErrLoginAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	// The identity claims changed, so a fresh token is issued with the update.
	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Name, user.Login, user.Role, user.ClinicID)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Save(ctx, user.ID.String(), tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	return &dto.UpdateUserResponse{
		User:  *converter.UserToResponse(user),
		Token: token,
	}, nil
}

func (u *authUsecase) GetDoctors(ctx context.Context, clinicID uuid.UUID) ([]dto.DoctorResponse, error) {
	doctors, err := u.userRepo.FindDoctorsByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.UsersToDoctorResponses(doctors), nil
}

func (u *authUsecase) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}
