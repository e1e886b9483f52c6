package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"proclinic-server/internal/converter"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/domain/repository"
	"proclinic-server/pkg/textutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	searchLimit     = 10
	searchListLimit = 20
)

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrCPFAlreadyExists = errors.New("cpf already in use by another patient")
	ErrInvalidCPF       = errors.New("invalid cpf value")
	ErrEmptySearchValue = errors.New("search value is required")
)

type PatientUsecase interface {
	Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.PatientResponse, error)
	Search(ctx context.Context, clinicID uuid.UUID, value string) ([]dto.PatientSearchResponse, error)
	SearchList(ctx context.Context, clinicID uuid.UUID, req *dto.SearchPatientsListRequest) ([]dto.PatientSearchResponse, error)
	Update(ctx context.Context, clinicID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	eventRepo   repository.EventRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	eventRepo repository.EventRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		eventRepo:   eventRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	nasc, err := parseInstant(req.Nasc)
	if err != nil {
		return nil, err
	}

	if req.CPF != "" {
		exist, err := u.patientRepo.FindByCPFAndClinic(tx, req.CPF, clinicID)
		if err != nil {
			u.log.Warnf("Failed to check cpf: %+v", err)
			return nil, err
		}
		if exist != nil {
			return nil, ErrCPFAlreadyExists
		}
	}

	patient := &entity.Patient{
		ClinicID:   clinicID,
		Name:       textutil.Normalize(req.Name),
		Nasc:       nasc,
		CPF:        req.CPF,
		Mother:     req.Mother,
		Phone:      req.Phone,
		Email:      req.Email,
		Plan:       req.Plan,
		PlanNumber: req.PlanNumber,
		Gender:     req.Gender,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByIDAndClinic(u.db.WithContext(ctx), patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

// Search routes an all-digits value to cpf prefix search and anything else to
// name prefix search.
func (u *patientUsecase) Search(ctx context.Context, clinicID uuid.UUID, value string) ([]dto.PatientSearchResponse, error) {
	db := u.db.WithContext(ctx)

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrEmptySearchValue
	}

	if _, err := strconv.Atoi(value); err == nil {
		patients, err := u.patientRepo.SearchByCPFPrefix(db, clinicID, value)
		if err != nil {
			u.log.Warnf("Failed to search patients by cpf: %+v", err)
			return nil, err
		}
		return converter.PatientsToSearchResponses(patients), nil
	}

	patients, err := u.patientRepo.SearchByNamePrefix(db, clinicID, textutil.Normalize(value), searchLimit)
	if err != nil {
		u.log.Warnf("Failed to search patients by name: %+v", err)
		return nil, err
	}
	return converter.PatientsToSearchResponses(patients), nil
}

func (u *patientUsecase) SearchList(ctx context.Context, clinicID uuid.UUID, req *dto.SearchPatientsListRequest) ([]dto.PatientSearchResponse, error) {
	patients, err := u.patientRepo.SearchByNameAndCPFPrefix(
		u.db.WithContext(ctx),
		clinicID,
		textutil.Normalize(req.Name),
		strings.TrimSpace(req.CPF),
		searchListLimit,
	)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToSearchResponses(patients), nil
}

// Update edits the patient record and mirrors the denormalized fields onto
// all of the patient's appointments. A cpf, once set, never changes.
func (u *patientUsecase) Update(ctx context.Context, clinicID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByIDAndClinic(tx, req.PatientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	nasc, err := parseInstant(req.Nasc)
	if err != nil {
		return nil, err
	}

	cpf := req.CPF
	if patient.CPF == "" {
		if cpf != "" && len(cpf) != 11 {
			return nil, ErrInvalidCPF
		}
	} else {
		cpf = patient.CPF
	}

	name := textutil.Normalize(req.Name)

	patient.Name = name
	patient.Nasc = nasc
	patient.CPF = cpf
	patient.Mother = req.Mother
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.Plan = req.Plan
	patient.PlanNumber = req.PlanNumber
	patient.CEP = req.CEP
	patient.Address = req.Address
	patient.AddressNumber = req.AddressNumber
	patient.Neighborhood = req.Neighborhood
	patient.City = req.City
	patient.State = req.State
	if req.Gender != "" {
		patient.Gender = req.Gender
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	mirror := map[string]interface{}{
		"title":        name,
		"phone":        req.Phone,
		"patient_nasc": nasc,
		"plan":         req.Plan,
		"plan_number":  req.PlanNumber,
	}
	if err := u.eventRepo.UpdatePatientMirror(tx, clinicID, patient.ID, mirror, false); err != nil {
		u.log.Warnf("Failed to mirror patient fields: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}
