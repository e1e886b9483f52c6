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

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrWeekendNotAllowed = errors.New("appointments cannot be scheduled on weekends")
	ErrStartInPast       = errors.New("selected date is earlier than today")
	ErrEventNotEditable  = errors.New("appointment cannot be changed: patient has arrived, is in consultation or was already seen")
	ErrEventNotDeletable = errors.New("appointment cannot be removed: patient is waiting, in consultation or was already seen")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidDateFormat = errors.New("invalid date format")
)

type EventUsecase interface {
	Create(ctx context.Context, clinicID, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetWeekEvents(ctx context.Context, clinicID, userID uuid.UUID, role, date string) ([]dto.AgendaEventResponse, error)
	GetWaitEvents(ctx context.Context, clinicID, userID uuid.UUID, role string) ([]dto.WaitEventResponse, error)
	GetDoctorEvents(ctx context.Context, clinicID, doctorID uuid.UUID) ([]dto.EventResponse, error)
	GetHistoryEvents(ctx context.Context, clinicID, userID uuid.UUID, role string) (*dto.HistoryResponse, error)
	Drop(ctx context.Context, clinicID, userID uuid.UUID, req *dto.DropEventRequest) (*dto.EventResponse, error)
	Update(ctx context.Context, clinicID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, clinicID, eventID uuid.UUID) error
	ChangeStatus(ctx context.Context, clinicID uuid.UUID, req *dto.ChangeStatusRequest) (*dto.EventResponse, error)
	ChangeConfirmed(ctx context.Context, clinicID uuid.UUID, req *dto.ChangeConfirmedRequest) (*dto.EventResponse, error)
}

type eventUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	planRepo  repository.PlanRepository
}

func NewEventUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	planRepo repository.PlanRepository,
) EventUsecase {
	return &eventUsecase{
		db:        db,
		log:       log,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		planRepo:  planRepo,
	}
}

func (u *eventUsecase) Create(ctx context.Context, clinicID, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	db := u.db.WithContext(ctx)

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

	if err := checkSchedulable(start, time.Now()); err != nil {
		return nil, err
	}

	event := &entity.Event{
		ClinicID:   clinicID,
		UserID:     userID,
		PatientID:  req.PatientID,
		Title:      textutil.Normalize(req.Title),
		Phone:      req.Phone,
		Plan:       req.Plan,
		PlanNumber: req.PlanNumber,
		DoctorID:   req.Doctor,
		Start:      start,
		End:        end,
		Type:       req.Type,
		Status:     status,
		Blocked:    status == entity.StatusBloqueado,
		Obs:        req.Obs,
	}

	if req.PatientNasc != "" {
		nasc, err := parseInstant(req.PatientNasc)
		if err != nil {
			return nil, err
		}
		event.PatientNasc = &nasc
	}

	if err := u.eventRepo.Create(db, event); err != nil {
		u.log.Warnf("Failed to create event: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) GetWeekEvents(ctx context.Context, clinicID, userID uuid.UUID, role, date string) ([]dto.AgendaEventResponse, error) {
	from, err := parseInstant(date)
	if err != nil {
		return nil, err
	}

	filter := repository.EventFilter{
		ClinicID: clinicID,
		From:     from,
		To:       from.AddDate(0, 0, 7),
	}
	if role == entity.RoleDoctor {
		filter.DoctorID = userID
	}

	events, err := u.eventRepo.Find(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list week events: %+v", err)
		return nil, err
	}
	return converter.EventsToAgendaResponses(events), nil
}

func (u *eventUsecase) GetWaitEvents(ctx context.Context, clinicID, userID uuid.UUID, role string) ([]dto.WaitEventResponse, error) {
	filter := repository.EventFilter{
		ClinicID: clinicID,
		Statuses: entity.WaitStatuses,
		OrderBy:  "start asc",
	}
	if role == entity.RoleDoctor {
		filter.DoctorID = userID
	}

	events, err := u.eventRepo.Find(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list wait events: %+v", err)
		return nil, err
	}
	return converter.EventsToWaitResponses(events), nil
}

func (u *eventUsecase) GetDoctorEvents(ctx context.Context, clinicID, doctorID uuid.UUID) ([]dto.EventResponse, error) {
	events, err := u.eventRepo.Find(u.db.WithContext(ctx), repository.EventFilter{
		ClinicID: clinicID,
		DoctorID: doctorID,
	})
	if err != nil {
		u.log.Warnf("Failed to list doctor events: %+v", err)
		return nil, err
	}

	responses := make([]dto.EventResponse, len(events))
	for i := range events {
		responses[i] = *converter.EventToResponse(&events[i])
	}
	return responses, nil
}

func (u *eventUsecase) GetHistoryEvents(ctx context.Context, clinicID, userID uuid.UUID, role string) (*dto.HistoryResponse, error) {
	filter := repository.EventFilter{
		ClinicID: clinicID,
		Statuses: []entity.EventStatus{entity.StatusAtendido},
		OrderBy:  "atend_start desc",
		Limit:    15,
	}
	if role == entity.RoleDoctor {
		filter.DoctorID = userID
	}

	var (
		events  []entity.Event
		doctors []entity.User
		plans   []entity.Plan
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = u.eventRepo.Find(u.db.WithContext(gctx), filter)
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
		u.log.Warnf("Failed to load history: %+v", err)
		return nil, err
	}

	return &dto.HistoryResponse{
		HistoryEvents: converter.EventsToHistoryResponses(events),
		Doctors:       converter.UsersToDoctorResponses(doctors),
		Plans:         converter.PlansToResponses(plans),
	}, nil
}

// Drop reschedules an appointment by drag-and-drop: only start/end move.
func (u *eventUsecase) Drop(ctx context.Context, clinicID, userID uuid.UUID, req *dto.DropEventRequest) (*dto.EventResponse, error) {
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

	if !event.Status.CanReschedule() {
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

	if err := checkSchedulable(start, time.Now()); err != nil {
		return nil, err
	}

	event.Start = start
	event.End = end
	event.UserID = userID

	if err := u.eventRepo.Save(tx, event); err != nil {
		u.log.Warnf("Failed to reschedule event: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) Update(ctx context.Context, clinicID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
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

	event.UserID = userID
	event.PatientID = req.PatientID
	event.Title = req.Title
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

	if req.PatientNasc != "" {
		nasc, err := parseInstant(req.PatientNasc)
		if err != nil {
			return nil, err
		}
		event.PatientNasc = &nasc
	} else {
		event.PatientNasc = nil
	}

	if err := u.eventRepo.Save(tx, event); err != nil {
		u.log.Warnf("Failed to update event: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

func (u *eventUsecase) Delete(ctx context.Context, clinicID, eventID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	event, err := u.eventRepo.FindByIDAndClinic(tx, eventID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find event: %+v", err)
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	if !event.Status.CanDelete() {
		return ErrEventNotDeletable
	}

	if err := u.eventRepo.Delete(tx, eventID, clinicID); err != nil {
		u.log.Warnf("Failed to delete event: %+v", err)
		return err
	}

	return tx.Commit().Error
}

// ChangeStatus moves the appointment through its lifecycle. Any transition is
// accepted; the edit and delete guards are enforced on those operations.
func (u *eventUsecase) ChangeStatus(ctx context.Context, clinicID uuid.UUID, req *dto.ChangeStatusRequest) (*dto.EventResponse, error) {
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

	status := entity.EventStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	event.Status = status
	if req.Confirm != "" {
		confirm, err := parseInstant(req.Confirm)
		if err != nil {
			return nil, err
		}
		event.Confirm = &confirm
	}

	if err := u.eventRepo.Save(tx, event); err != nil {
		u.log.Warnf("Failed to change status: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}

// ChangeConfirmed flips the WhatsApp confirmation flag.
func (u *eventUsecase) ChangeConfirmed(ctx context.Context, clinicID uuid.UUID, req *dto.ChangeConfirmedRequest) (*dto.EventResponse, error) {
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

	event.Confirmed = req.Confirmed

	if err := u.eventRepo.Save(tx, event); err != nil {
		u.log.Warnf("Failed to change confirmation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.EventToResponse(event), nil
}
