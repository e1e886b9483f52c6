package usecase

import (
	"context"
	"testing"
	"time"

	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/repository"
)

func newAgendaUsecase(t *testing.T) (AgendaUsecase, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	uc := NewAgendaUsecase(env.db, testLogger(),
		repository.NewEventRepository(),
		repository.NewPatientRepository(),
		repository.NewMedicalRecordRepository(),
		repository.NewUserRepository(),
		repository.NewPlanRepository(),
		repository.NewClinicRepository(),
	)
	return uc, env
}

func TestGetAgendaBundlesCollections(t *testing.T) {
	uc, env := newAgendaUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAgendado, time.Now())
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusChegada, time.Now())

	agenda, err := uc.GetAgenda(context.Background(), env.clinic.ID, recep.ID, entity.RoleRecep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agenda.Events) != 2 {
		t.Errorf("expected both events in the current week, got %d", len(agenda.Events))
	}
	if len(agenda.WaitEvents) != 1 {
		t.Errorf("expected the arrived patient in the wait queue, got %d", len(agenda.WaitEvents))
	}
	if len(agenda.Doctors) != 1 {
		t.Errorf("expected the clinic doctors alongside, got %d", len(agenda.Doctors))
	}
	if agenda.Clinic == nil || agenda.Clinic.ID != env.clinic.ID {
		t.Error("the clinic profile must come along with the agenda")
	}
}

func TestGetDashboardExcludesBlocks(t *testing.T) {
	uc, env := newAgendaUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAgendado, time.Now())
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusBloqueado, time.Now())

	dashboard, err := uc.GetDashboard(context.Background(), env.clinic.ID, recep.ID, entity.RoleRecep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dashboard.Events) != 1 {
		t.Errorf("blocks must stay out of the dashboard, got %d events", len(dashboard.Events))
	}
}

func TestGetDashboardDoctorSeesWholeSchedule(t *testing.T) {
	uc, env := newAgendaUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)

	farAhead := time.Now().AddDate(0, 2, 0)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, nil, entity.StatusAgendado, farAhead)

	recepView, err := uc.GetDashboard(context.Background(), env.clinic.ID, recep.ID, entity.RoleRecep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recepView.Events) != 0 {
		t.Errorf("the reception window ends five days ahead, got %d events", len(recepView.Events))
	}

	doctorView, err := uc.GetDashboard(context.Background(), env.clinic.ID, doctor.ID, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctorView.Events) != 1 {
		t.Errorf("a doctor's window is open-ended, got %d events", len(doctorView.Events))
	}
}

func TestUpdateEditEventCascadesToPatient(t *testing.T) {
	uc, env := newAgendaUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	patient := seedPatient(t, env.db, env.clinic.ID, "maria silva", "12345678901")

	start := nextWeekday(time.Tuesday)
	event := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, &patient.ID, entity.StatusAgendado, start)
	sibling := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, &patient.ID, entity.StatusAgendado, start.Add(24*time.Hour))
	seen := seedEvent(t, env.db, env.clinic.ID, recep.ID, doctor.ID, &patient.ID, entity.StatusAtendido, start)

	updated, err := uc.UpdateEditEvent(context.Background(), env.clinic.ID, recep.ID, &dto.UpdateEventRequest{
		ID:         event.ID,
		PatientID:  &patient.ID,
		Title:      "Maria Conceição",
		Phone:      "11911112222",
		Plan:       "bradesco",
		PlanNumber: "777",
		Doctor:     doctor.ID,
		Start:      start.Format(time.RFC3339),
		End:        start.Add(time.Hour).Format(time.RFC3339),
		Type:       "consulta",
		Status:     string(entity.StatusAgendado),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "maria conceicao" {
		t.Errorf("title must be stored normalized, got %q", updated.Title)
	}

	var storedPatient entity.Patient
	if err := env.db.First(&storedPatient, "id = ?", patient.ID).Error; err != nil {
		t.Fatalf("failed to reload patient: %v", err)
	}
	if storedPatient.Name != "maria conceicao" || storedPatient.Plan != "bradesco" {
		t.Errorf("patient record not updated: %+v", storedPatient)
	}

	var storedSibling entity.Event
	if err := env.db.First(&storedSibling, "id = ?", sibling.ID).Error; err != nil {
		t.Fatalf("failed to reload sibling event: %v", err)
	}
	if storedSibling.Title != "maria conceicao" {
		t.Errorf("sibling appointment must mirror the change, got %q", storedSibling.Title)
	}

	var storedSeen entity.Event
	if err := env.db.First(&storedSeen, "id = ?", seen.ID).Error; err != nil {
		t.Fatalf("failed to reload completed event: %v", err)
	}
	if storedSeen.Title != "consulta teste" {
		t.Errorf("a completed appointment keeps its historical copy, got %q", storedSeen.Title)
	}
}

func TestGetAtendHidesClinicalContentFromReception(t *testing.T) {
	uc, env := newAgendaUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	patient := seedPatient(t, env.db, env.clinic.ID, "maria silva", "12345678901")

	now := time.Now()
	record := &entity.MedicalRecord{
		ClinicID:    env.clinic.ID,
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		Date:        now,
		DateStart:   now.Add(-30 * time.Minute),
		DateEnd:     now,
		DateConfirm: now.Add(-time.Hour),
		Diagnostic:  "enxaqueca",
	}
	if err := env.db.Create(record).Error; err != nil {
		t.Fatalf("failed to seed medical record: %v", err)
	}

	recepView, err := uc.GetAtend(context.Background(), env.clinic.ID, recep.ID, patient.ID, entity.RoleRecep)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recepRecords, ok := recepView.MedicalRecords.([]dto.RecepMedicalRecordResponse)
	if !ok {
		t.Fatalf("reception must get the timestamps-only projection, got %T", recepView.MedicalRecords)
	}
	if len(recepRecords) != 1 {
		t.Fatalf("expected one record, got %d", len(recepRecords))
	}

	doctorView, err := uc.GetAtend(context.Background(), env.clinic.ID, doctor.ID, patient.ID, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doctorRecords, ok := doctorView.MedicalRecords.([]dto.MedicalRecordResponse)
	if !ok {
		t.Fatalf("a doctor must get the full records, got %T", doctorView.MedicalRecords)
	}
	if len(doctorRecords) != 1 || doctorRecords[0].Diagnostic != "enxaqueca" {
		t.Fatalf("expected the clinical content, got %+v", doctorRecords)
	}
}

func TestGetReports(t *testing.T) {
	uc, env := newAgendaUsecase(t)
	recep := seedUser(t, env.db, env.clinic.ID, "recep1", entity.RoleRecep)
	docA := seedUser(t, env.db, env.clinic.ID, "doca", entity.RoleDoctor)
	docB := seedUser(t, env.db, env.clinic.ID, "docb", entity.RoleDoctor)

	day := time.Date(2026, 8, 10, 10, 0, 0, 0, clinicZone)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, docA.ID, nil, entity.StatusAtendido, day)
	seedEvent(t, env.db, env.clinic.ID, recep.ID, docB.ID, nil, entity.StatusAtendido, day.Add(2*time.Hour))
	seedEvent(t, env.db, env.clinic.ID, recep.ID, docA.ID, nil, entity.StatusAgendado, day)

	req := &dto.ReportsRequest{Start: "2026-08-10", End: "2026-08-10", Doctor: "todos"}

	if _, err := uc.GetReports(context.Background(), env.clinic.ID, entity.RoleRecep, req); err != ErrReportsForbidden {
		t.Errorf("recep: expected ErrReportsForbidden, got %v", err)
	}

	all, err := uc.GetReports(context.Background(), env.clinic.ID, entity.RoleAdmin, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected the two completed appointments, got %d", len(all))
	}
	if all[0].Doctor == nil {
		t.Error("the all-doctors report must carry the doctor column")
	}

	one, err := uc.GetReports(context.Background(), env.clinic.ID, entity.RoleAdmin, &dto.ReportsRequest{
		Start: "2026-08-10", End: "2026-08-10", Doctor: docA.ID.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("expected one row for the chosen doctor, got %d", len(one))
	}
	if one[0].Doctor != nil {
		t.Error("the single-doctor report omits the doctor column")
	}

	if _, err := uc.GetReports(context.Background(), env.clinic.ID, entity.RoleAdmin, &dto.ReportsRequest{
		Start: "2026-08-10", End: "2026-08-10", Doctor: "not-a-uuid",
	}); err != ErrInvalidDoctorID {
		t.Errorf("expected ErrInvalidDoctorID, got %v", err)
	}
}
