package usecase

import (
	"context"
	"errors"
	"time"

	"proclinic-server/internal/converter"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/domain/repository"
	"proclinic-server/pkg/textutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Dashboard window: four weeks back, five days ahead.
const (
	dashboardLookback  = 26 * 24 * time.Hour
	dashboardLookahead = 5 * 24 * time.Hour
)

var (
	ErrReportsForbidden = errors.New("user does not have permission to access this resource")
	ErrInvalidDoctorID  = errors.New("invalid doctor id")
)

// AgendaUsecase serves the screens that load several collections at once:
// the weekly calendar, the dashboard, the encounter view and the reports.
type AgendaUsecase interface {
	GetAgenda(ctx context.Context, clinicID, userID uuid.UUID, role string) (*dto.AgendaResponse, error)
	GetDashboard(ctx context.Context, clinicID, userID uuid.UUID, role string) (*dto.DashboardResponse, error)
	UpdateEditEvent(ctx context.Context, clinicID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	GetAtend(ctx context.Context, clinicID, userID, patientID uuid.UUID, role string) (*dto.AtendResponse, error)
	GetReports(ctx context.Context, clinicID uuid.UUID, role string, req *dto.ReportsRequest) ([]dto.ReportEventResponse, error)
}

type agendaUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	eventRepo   repository.EventRepository
	patientRepo repository.PatientRepository
	recordRepo  repository.MedicalRecordRepository
	userRepo    repository.UserRepository
	planRepo    repository.PlanRepository
	clinicRepo  repository.ClinicRepository
}

func NewAgendaUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	eventRepo repository.EventRepository,
	patientRepo repository.PatientRepository,
	recordRepo repository.MedicalRecordRepository,
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
	clinicRepo repository.ClinicRepository,
) AgendaUsecase {
	return &agendaUsecase{
		db:          db,
		log:         log,
		eventRepo:   eventRepo,
		patientRepo: patientRepo,
		recordRepo:  recordRepo,
		userRepo:    userRepo,
		planRepo:    planRepo,
		clinicRepo:  clinicRepo,
	}
}

func (u *agendaUsecase) GetAgenda(ctx context.Context, clinicID, userID uuid.UUID, role string) (*dto.AgendaResponse, error) {
	weekStart, weekEnd := weekBounds(time.Now())

	eventFilter := repository.EventFilter{
		ClinicID: clinicID,
		From:     weekStart,
		To:       weekEnd,
	}
	waitFilter := repository.EventFilter{
		ClinicID: clinicID,
		Statuses: entity.WaitStatuses,
		OrderBy:  "start asc",
	}
	if role == entity.RoleDoctor {
		eventFilter.DoctorID = userID
		waitFilter.DoctorID = userID
	}

	var (
		events     []entity.Event
		waitEvents []entity.Event
		plans      []entity.Plan
		doctors    []entity.User
		clinic     *entity.Clinic
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = u.eventRepo.Find(u.db.WithContext(gctx), eventFilter)
		return err
	})
	g.Go(func() error {
		var err error
		waitEvents, err = u.eventRepo.Find(u.db.WithContext(gctx), waitFilter)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = u.planRepo.FindByClinic(u.db.WithContext(gctx), clinicID)
		return err
	})
	g.Go(func() error {
		var err error
		doctors, err = u.userRepo.FindDoctorsByClinic(u.db.WithContext(gctx), clinicID)
		return err
	})
	g.Go(func() error {
		var err error
		clinic, err = u.clinicRepo.FindByID(u.db.WithContext(gctx), clinicID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load agenda: %+v", err)
		return nil, err
	}

	return &dto.AgendaResponse{
		Events:     converter.EventsToAgendaResponses(events),
		WaitEvents: converter.EventsToWaitResponses(waitEvents),
		Plans:      converter.PlansToResponses(plans),
		Doctors:    converter.UsersToDoctorResponses(doctors),
		Clinic:     converter.ClinicToResponse(clinic),
	}, nil
}

func (u *agendaUsecase) GetDashboard(ctx context.Context, clinicID, userID uuid.UUID, role string) (*dto.DashboardResponse, error) {
	now := time.Now()

	filter := repository.EventFilter{
		ClinicID:  clinicID,
		NotStatus: entity.StatusBloqueado,
		From:      now.Add(-dashboardLookback),
		To:        now.Add(dashboardLookahead),
	}
	if role == entity.RoleDoctor {
		// Doctors see their whole upcoming schedule, not just five days.
		filter.DoctorID = userID
		filter.To = time.Time{}
		filter.OpenEnded = true
	}

	var (
		events  []entity.Event
		plans   []entity.Plan
		doctors []entity.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = u.eventRepo.Find(u.db.WithContext(gctx), filter)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = u.planRepo.FindByClinic(u.db.WithContext(gctx), clinicID)
		return err
	})
	g.Go(func() error {
		var err error
		doctors, err = u.userRepo.FindDoctorsByClinic(u.db.WithContext(gctx), clinicID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		Events:  converter.EventsToDashboardResponses(events),
		Plans:   converter.PlansToResponses(plans),
		Doctors: converter.UsersToDoctorResponses(doctors),
	}, nil
}

// UpdateEditEvent edits an appointment together with its patient record: the
// patient fields are updated and the change is mirrored onto the patient's
// other appointments, except completed ones which keep their historical copy.
func (u *agendaUsecase) UpdateEditEvent(ctx context.Context, clinicID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	event, err := u.eventRepo.FindByIDAndClinic(tx, req.ID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find event: %+v", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if !event.Status.CanEdit() {
		return nil, ErrEventNotEditable
	}

	start, err := parseInstant(req.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseInstant(req.End)
	if err != nil {
		return nil, err
	}

	status := entity.EventStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	title := textutil.Normalize(req.Title)

	var nasc *time.Time
	if req.PatientNasc != "" {
		parsed, err := parseInstant(req.PatientNasc)
		if err != nil {
			return nil, err
		}
		nasc = &parsed
	}

	event.UserID = userID
	event.PatientID = req.PatientID
	event.PatientNasc = nasc
	event.Title = title
	event.Phone = req.Phone
	event.Plan = req.Plan
	event.PlanNumber = req.PlanNumber
	event.DoctorID = req.Doctor
	event.Start = start
	event.End = end
	event.Type = req.Type
	event.Status = status
	event.Blocked = req.Blocked
	event.Obs = req.Obs

	if err := u.eventRepo.Save(tx, event); err != nil {
		u.log.Warnf("Failed to update event: %+v", err)
		return nil, err
	}

	if req.PatientID != nil {
		patient, err := u.patientRepo.FindByIDAndClinic(tx, *req.PatientID, clinicID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if patient != nil {
			patient.Name = title
			patient.Plan = req.Plan
			patient.PlanNumber = req.PlanNumber
			patient.Phone = req.Phone
			if nasc != nil {
				patient.Nasc = *nasc
			}
			if err := u.patientRepo.Update(tx, patient); err != nil {
				u.log.Warnf("Failed to update patient: %+v", err)
				return nil, err
			}
		}

		mirror := map[string]interface{}{
			"title":        title,
			"plan":         req.Plan,
			"plan_number":  req.PlanNumber,
			"phone":        req.Phone,
			"patient_nasc": nasc,
		}
		if err := u.eventRepo.UpdatePatientMirror(tx, clinicID, *req.PatientID, mirror, true); err != nil {
			u.log.Warnf("Failed to mirror patient fields: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *agendaUsecase) GetAtend(ctx context.Context, clinicID, userID, patientID uuid.UUID, role string) (*dto.AtendResponse, error) {
	waitFilter := repository.EventFilter{
		ClinicID:  clinicID,
		PatientID: patientID,
		Statuses:  entity.WaitStatuses,
		OrderBy:   "start asc",
	}
	if role == entity.RoleDoctor {
		waitFilter.DoctorID = userID
	}

	var (
		patient    *entity.Patient
		records    []entity.MedicalRecord
		waitEvents []entity.Event
		doctors    []entity.User
		plans      []entity.Plan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		patient, err = u.patientRepo.FindByIDAndClinic(u.db.WithContext(gctx), patientID, clinicID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = u.recordRepo.FindByPatientAndClinic(u.db.WithContext(gctx), patientID, clinicID)
		return err
	})
	g.Go(func() error {
		var err error
		waitEvents, err = u.eventRepo.Find(u.db.WithContext(gctx), waitFilter)
		return err
	})
	g.Go(func() error {
		var err error
		doctors, err = u.userRepo.FindDoctorsByClinic(u.db.WithContext(gctx), clinicID)
		return err
	})
	g.Go(func() error {
		var err error
		plans, err = u.planRepo.FindByClinic(u.db.WithContext(gctx), clinicID)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load encounter view: %+v", err)
		return nil, err
	}

	// Receptionists get encounter timestamps only, never clinical content.
	var recordPayload interface{}
	if role == entity.RoleRecep {
		recordPayload = converter.MedicalRecordsToRecepResponses(records)
	} else {
		recordPayload = converter.MedicalRecordsToResponses(records)
	}

	return &dto.AtendResponse{
		Patient:        converter.PatientToResponse(patient),
		MedicalRecords: recordPayload,
		WaitEvents:     converter.EventsToWaitResponses(waitEvents),
		Doctors:        converter.UsersToDoctorResponses(doctors),
		Plans:          converter.PlansToResponses(plans),
	}, nil
}

func (u *agendaUsecase) GetReports(ctx context.Context, clinicID uuid.UUID, role string, req *dto.ReportsRequest) ([]dto.ReportEventResponse, error) {
	if role == entity.RoleRecep {
		return nil, ErrReportsForbidden
	}

	start, err := parseInstant(req.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseInstant(req.End)
	if err != nil {
		return nil, err
	}

	filter := repository.EventFilter{
		ClinicID: clinicID,
		Statuses: []entity.EventStatus{entity.StatusAtendido},
		From:     dayStart(start),
		To:       dayEnd(end),
	}

	allDoctors := req.Doctor == "todos"
	if !allDoctors {
		doctorID, err := uuid.Parse(req.Doctor)
		if err != nil {
			return nil, ErrInvalidDoctorID
		}
		filter.DoctorID = doctorID
	}

	events, err := u.eventRepo.Find(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to load report: %+v", err)
		return nil, err
	}

	return converter.EventsToReportResponses(events, allDoctors), nil
}
