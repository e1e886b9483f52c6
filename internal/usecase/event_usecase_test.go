package usecase

import (
	"context"
	"testing"
	"time"

	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/repository"

	"github.com/google/uuid"
)

func newEventUsecase(t *testing.T) (EventUsecase, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	uc := NewEventUsecase(env.db, testLogger(),
		repository.NewEventRepository(),
		repository.NewUserRepository(),
		repository.NewPlanRepository(),
	)
	return uc, env
}

func createEventRequest(doctorID uuid.UUID, start time.Time) *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:  "João Silva",
		Phone:  "11999990000",
		Doctor: doctorID,
		Start:  start.Format(time.RFC3339),
		End:    start.Add(30 * time.Minute).Format(time.RFC3339),
		Type:   "consulta",
		Status: string(entity.StatusAgendado),
	}
}

func TestCreateEventNormalizesTitle(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)

	event, err := uc.Create(context.Background(), env.clinic.ID, recep.ID, createEventRequest(doctor.ID, nextWeekday(time.Tuesday)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Title != "joao silva" {
		t.Errorf("title must be stored normalized, got %q", event.Title)
	}
	if event.Blocked {
		t.Error("a scheduled appointment must not be flagged as a block")
	}
}

func TestCreateEventRejectsWeekend(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)

	for _, wd := range []time.Weekday{time.Saturday, time.Sunday} {
		_, err := uc.Create(context.Background(), env.clinic.ID, recep.ID, createEventRequest(doctor.ID, nextWeekday(wd)))
		if err != ErrWeekendNotAllowed {
			t.Errorf("%s: expected ErrWeekendNotAllowed, got %v", wd, err)
		}
	}
}

func TestCreateEventRejectsPastStart(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)

	past := lastWeekday(time.Wednesday)
	_, err := uc.Create(context.Background(), env.clinic.ID, recep.ID, createEventRequest(doctor.ID, past))
	if err != ErrStartInPast {
		t.Fatalf("expected ErrStartInPast, got %v", err)
	}
}

func TestCreateEventBlockedStatus(t *testing.T) {
	uc, env := newEventUsecase(t)
	admin := seedUser(t, env.db, env.clinic.ID, "admin1", entity.RoleAdmin)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)

	req := createEventRequest(doctor.ID, nextWeekday(time.Thursday))
	req.Status = string(entity.StatusBloqueado)
	req.Title = "Bloqueio almoço"

	event, err := uc.Create(context.Background(), env.clinic.ID, admin.ID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !event.Blocked {
		t.Error("a bloqueado event must carry the blocked flag")
	}
}

func TestUpdateEventRequiresAgendado(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	start := nextWeekday(time.Tuesday)
	event := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusChegada, start)

	_, err := uc.Update(context.Background(), env.clinic.ID, recep.ID, &dto.UpdateEventRequest{
		ID:     event.ID,
		Title:  "outro titulo",
		Doctor: doctor.ID,
		Start:  start.Format(time.RFC3339),
		End:    start.Add(time.Hour).Format(time.RFC3339),
		Type:   "consulta",
		Status: string(entity.StatusAgendado),
	})
	if err != ErrEventNotEditable {
		t.Fatalf("expected ErrEventNotEditable, got %v", err)
	}
}

func TestDeleteEventGuards(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	start := nextWeekday(time.Tuesday)

	waiting := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusChegada, start)
	if err := uc.Delete(context.Background(), env.clinic.ID, waiting.ID); err != ErrEventNotDeletable {
		t.Errorf("chegada: expected ErrEventNotDeletable, got %v", err)
	}

	scheduled := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAgendado, start)
	if err := uc.Delete(context.Background(), env.clinic.ID, scheduled.ID); err != nil {
		t.Errorf("agendado: unexpected error: %v", err)
	}

	var count int64
	env.db.Model(&entity.Event{}).Where("id = ?", scheduled.ID).Count(&count)
	if count != 0 {
		t.Error("deleted event still present")
	}
}

func TestDropReschedulesBlockedEvent(t *testing.T) {
	uc, env := newEventUsecase(t)
	admin := seedUser(t, env.db, env.clinic.ID, "admin1", entity.RoleAdmin)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	event := seedEvent(t, env.db, env.clinic.ID, admin.ID, doctor.ID, nil, entity.StatusBloqueado, nextWeekday(time.Tuesday))

	target := nextWeekday(time.Friday)
	moved, err := uc.Drop(context.Background(), env.clinic.ID, recep.ID, &dto.DropEventRequest{
		ID:    event.ID,
		Start: target.Format(time.RFC3339),
		End:   target.Add(time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved.Start.Equal(target) {
		t.Errorf("start not moved: got %v, want %v", moved.Start, target)
	}
	if moved.UserID != recep.ID {
		t.Error("reschedule must record who moved the appointment")
	}
}

func TestDropRejectsSeenAppointment(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	event := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAtendido, nextWeekday(time.Tuesday))

	target := nextWeekday(time.Friday)
	_, err := uc.Drop(context.Background(), env.clinic.ID, recep.ID, &dto.DropEventRequest{
		ID:    event.ID,
		Start: target.Format(time.RFC3339),
		End:   target.Add(time.Hour).Format(time.RFC3339),
	})
	if err != ErrEventNotEditable {
		t.Fatalf("expected ErrEventNotEditable, got %v", err)
	}
}

func TestChangeStatusAcceptsAnyTransition(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	event := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAtendido, nextWeekday(time.Tuesday))

	changed, err := uc.ChangeStatus(context.Background(), env.clinic.ID, &dto.ChangeStatusRequest{
		ID:     event.ID,
		Status: string(entity.StatusAgendado),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed.Status != string(entity.StatusAgendado) {
		t.Errorf("status not changed, got %q", changed.Status)
	}

	if _, err := uc.ChangeStatus(context.Background(), env.clinic.ID, &dto.ChangeStatusRequest{
		ID:     event.ID,
		Status: "invalido",
	}); err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestChangeStatusRecordsConfirmation(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	event := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAgendado, nextWeekday(time.Tuesday))

	confirm := time.Date(2026, 9, 10, 9, 0, 0, 0, clinicZone)
	changed, err := uc.ChangeStatus(context.Background(), env.clinic.ID, &dto.ChangeStatusRequest{
		ID:      event.ID,
		Status:  string(entity.StatusChegada),
		Confirm: confirm.Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed.Confirm == nil || !changed.Confirm.Equal(confirm) {
		t.Errorf("confirmation timestamp not stored: %v", changed.Confirm)
	}
}

func TestGetWaitEventsOrderedByStart(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)

	later := nextWeekday(time.Thursday)
	earlier := later.Add(-2 * time.Hour)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusChegada, later)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAtendimento, earlier)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAgendado, later)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAtendido, later)

	events, err := uc.GetWaitEvents(context.Background(), env.clinic.ID, recep.ID, entity.RoleRecep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected the two waiting appointments, got %d", len(events))
	}
	if !events[0].Start.Before(events[1].Start) {
		t.Error("wait queue must be ordered by start ascending")
	}
}

func TestGetWeekEventsScopesDoctor(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	docA := seedUser(t, env.db, env.clinic.ID, "doca", entity.RoleDoctor)
	docB := seedUser(t, env.db, env.clinic.ID, "docb", entity.RoleDoctor)

	start := nextWeekday(time.Wednesday)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, docA.ID, nil, entity.StatusAgendado, start)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, docB.ID, nil, entity.StatusAgendado, start)

	date := start.Format("2006-01-02")

	all, err := uc.GetWeekEvents(context.Background(), env.clinic.ID, recep.ID, entity.RoleRecep, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("receptionist must see every doctor, got %d events", len(all))
	}

	own, err := uc.GetWeekEvents(context.Background(), env.clinic.ID, docA.ID, entity.RoleDoctor, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own) != 1 || own[0].Doctor != docA.ID {
		t.Errorf("doctor must only see their own agenda, got %+v", own)
	}
}

func TestGetHistoryEventsBundlesLookups(t *testing.T) {
	uc, env := newEventUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)

	start := nextWeekday(time.Tuesday)
	atendStart := time.Now().Add(-time.Hour)
	event := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAtendido, start)
	env.db.Model(event).Update("atend_start", atendStart)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAgendado, start)

	history, err := uc.GetHistoryEvents(context.Background(), env.clinic.ID, recep.ID, entity.RoleRecep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.HistoryEvents) != 1 {
		t.Errorf("expected only the seen appointment, got %d", len(history.HistoryEvents))
	}
	if len(history.Doctors) != 1 {
		t.Errorf("expected the clinic doctors alongside, got %d", len(history.Doctors))
	}
}
