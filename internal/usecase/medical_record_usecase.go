package usecase

import (
	"context"
	"errors"

	"proclinic-server/internal/converter"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRecordCreateForbidden = errors.New("user does not have permission to create a medical record")
	ErrRecordReadForbidden   = errors.New("user does not have permission to read medical records")
	ErrAtendForbidden        = errors.New("user does not have permission to start a consultation")
	ErrAtendAlreadyOpen      = errors.New("patient already has an open consultation")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, clinicID, doctorID uuid.UUID, role string, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByPatient(ctx context.Context, clinicID, patientID uuid.UUID, role string) ([]dto.MedicalRecordResponse, error)
	InitAtend(ctx context.Context, clinicID uuid.UUID, role string, req *dto.InitAtendRequest) (*dto.EventResponse, error)
}

type medicalRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	recordRepo  repository.MedicalRecordRepository
	eventRepo   repository.EventRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	eventRepo repository.EventRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:          db,
		log:         log,
		recordRepo:  recordRepo,
		eventRepo:   eventRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

// Create writes the clinical note and completes the appointment that
// triggered it, in one transaction.
func (u *medicalRecordUsecase) Create(ctx context.Context, clinicID, doctorID uuid.UUID, role string, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if role != entity.RoleDoctor {
		return nil, ErrRecordCreateForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.userRepo.FindByIDAndClinic(tx, doctorID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrUserNotFound
	}

	patient, err := u.patientRepo.FindByIDAndClinic(tx, req.PatientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dateStart, err := parseInstant(req.DateStart)
	if err != nil {
		return nil, err
	}
	dateEnd, err := parseInstant(req.DateEnd)
	if err != nil {
		return nil, err
	}
	dateConfirm, err := parseInstant(req.DateConfirm)
	if err != nil {
		return nil, err
	}

	date := dateStart
	if req.Date != "" {
		if date, err = parseInstant(req.Date); err != nil {
			return nil, err
		}
	}

	record := &entity.MedicalRecord{
		ClinicID:       clinicID,
		PatientID:      req.PatientID,
		DoctorID:       doctorID,
		Date:           date,
		DateStart:      dateStart,
		DateEnd:        dateEnd,
		DateConfirm:    dateConfirm,
		Complaint:      req.Complaint,
		CurrentHistory: req.CurrentHistory,
		MedicalHistory: req.MedicalHistory,
		PhysicalExam:   req.PhysicalExam,
		Diagnostic:     req.Diagnostic,
		Conduct:        req.Conduct,
		Prescription:   req.Prescription,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	event, err := u.eventRepo.FindByIDAndClinic(tx, req.EventID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find event: %+v", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	event.Status = entity.StatusAtendido
	if err := u.eventRepo.Save(tx, event); err != nil {
		u.log.Warnf("Failed to complete event: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetByPatient(ctx context.Context, clinicID, patientID uuid.UUID, role string) ([]dto.MedicalRecordResponse, error) {
	if role != entity.RoleDoctor && role != entity.RoleAdmin {
		return nil, ErrRecordReadForbidden
	}

	records, err := u.recordRepo.FindByPatientAndClinic(u.db.WithContext(ctx), patientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}
	return converter.MedicalRecordsToResponses(records), nil
}

// InitAtend opens a consultation: the appointment moves to atendimento and
// the consultation start time is recorded.
func (u *medicalRecordUsecase) InitAtend(ctx context.Context, clinicID uuid.UUID, role string, req *dto.InitAtendRequest) (*dto.EventResponse, error) {
	if role != entity.RoleDoctor {
		return nil, ErrAtendForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	event, err := u.eventRepo.FindByIDAndClinic(tx, req.EventID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find event: %+v", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	if event.Status == entity.StatusAtendimento {
		return nil, ErrAtendAlreadyOpen
	}

	atendStart, err := parseInstant(req.AtendStart)
	if err != nil {
		return nil, err
	}

	event.Status = entity.StatusAtendimento
	event.AtendStart = &atendStart

	if err := u.eventRepo.Save(tx, event); err != nil {
		u.log.Warnf("Failed to start consultation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}
