package usecase

import (
	"context"
	"testing"
	"time"

	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/repository"
)

func newPatientUsecase(t *testing.T) (PatientUsecase, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	uc := NewPatientUsecase(env.db, testLogger(), repository.NewPatientRepository(), repository.NewEventRepository())
	return uc, env
}

func TestCreatePatientNormalizesName(t *testing.T) {
	uc, env := newPatientUsecase(t)

	patient, err := uc.Create(context.Background(), env.clinic.ID, &dto.CreatePatientRequest{
		Name:   "José Antônio",
		Nasc:   "1985-07-20",
		Mother: "maria antonia",
		Phone:  "11988887777",
		Gender: entity.GenderMas,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patient.Name != "jose antonio" {
		t.Errorf("name must be stored normalized, got %q", patient.Name)
	}
}

func TestCreatePatientDuplicateCPF(t *testing.T) {
	uc, env := newPatientUsecase(t)
	seedPatient(t, env.db, env.clinic.ID, "maria silva", "12345678901")

	_, err := uc.Create(context.Background(), env.clinic.ID, &dto.CreatePatientRequest{
		Name:   "outra maria",
		Nasc:   "1985-07-20",
		CPF:    "12345678901",
		Mother: "mae",
		Phone:  "11988887777",
		Gender: entity.GenderFem,
	})
	if err != ErrCPFAlreadyExists {
		t.Fatalf("expected ErrCPFAlreadyExists, got %v", err)
	}
}

func TestCreatePatientSameCPFOtherClinic(t *testing.T) {
	uc, env := newPatientUsecase(t)
	otherClinic := seedClinic(t, env.db)
	seedPatient(t, env.db, otherClinic.ID, "maria silva", "12345678901")

	_, err := uc.Create(context.Background(), env.clinic.ID, &dto.CreatePatientRequest{
		Name:   "maria silva",
		Nasc:   "1985-07-20",
		CPF:    "12345678901",
		Mother: "mae",
		Phone:  "11988887777",
		Gender: entity.GenderFem,
	})
	if err != nil {
		t.Fatalf("cpf uniqueness is per clinic, got %v", err)
	}
}

func TestUpdatePatientCPFIsImmutable(t *testing.T) {
	uc, env := newPatientUsecase(t)
	patient := seedPatient(t, env.db, env.clinic.ID, "maria silva", "12345678901")

	updated, err := uc.Update(context.Background(), env.clinic.ID, &dto.UpdatePatientRequest{
		PatientID:  patient.ID,
		Name:       "maria silva santos",
		Nasc:       "1990-05-10",
		CPF:        "99999999999",
		Phone:      "11977776666",
		Plan:       "unimed",
		PlanNumber: "1234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CPF != "12345678901" {
		t.Errorf("cpf must not change once set, got %q", updated.CPF)
	}
}

func TestUpdatePatientSetsCPFWhenMissing(t *testing.T) {
	uc, env := newPatientUsecase(t)
	patient := seedPatient(t, env.db, env.clinic.ID, "maria silva", "")

	updated, err := uc.Update(context.Background(), env.clinic.ID, &dto.UpdatePatientRequest{
		PatientID:  patient.ID,
		Name:       "maria silva",
		Nasc:       "1990-05-10",
		CPF:        "12345678901",
		Phone:      "11977776666",
		Plan:       "unimed",
		PlanNumber: "1234",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CPF != "12345678901" {
		t.Errorf("a first cpf must be accepted, got %q", updated.CPF)
	}
}

func TestUpdatePatientMirrorsOntoEvents(t *testing.T) {
	uc, env := newPatientUsecase(t)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	patient := seedPatient(t, env.db, env.clinic.ID, "maria silva", "12345678901")
	event := seedEvent(t, env.db, env.clinic.ID, doctor.ID, doctor.ID, &patient.ID, entity.StatusAgendado, nextWeekday(time.Monday))

	_, err := uc.Update(context.Background(), env.clinic.ID, &dto.UpdatePatientRequest{
		PatientID:  patient.ID,
		Name:       "Maria Conceição",
		Nasc:       "1990-05-10",
		Phone:      "11911112222",
		Plan:       "bradesco",
		PlanNumber: "777",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stored entity.Event
	if err := env.db.First(&stored, "id = ?", event.ID).Error; err != nil {
		t.Fatalf("failed to reload event: %v", err)
	}
	if stored.Title != "maria conceicao" {
		t.Errorf("event title must mirror the patient name, got %q", stored.Title)
	}
	if stored.Plan != "bradesco" || stored.PlanNumber != "777" || stored.Phone != "11911112222" {
		t.Errorf("event mirror fields not updated: %+v", stored)
	}
}

func TestSearchRoutesDigitsToCPF(t *testing.T) {
	uc, env := newPatientUsecase(t)
	seedPatient(t, env.db, env.clinic.ID, "maria silva", "12345678901")
	seedPatient(t, env.db, env.clinic.ID, "joao souza", "98765432100")

	byCPF, err := uc.Search(context.Background(), env.clinic.ID, "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byCPF) != 1 || byCPF[0].CPF != "12345678901" {
		t.Fatalf("expected the cpf-prefixed patient, got %+v", byCPF)
	}

	byName, err := uc.Search(context.Background(), env.clinic.ID, "Mar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "maria silva" {
		t.Fatalf("expected the name-prefixed patient, got %+v", byName)
	}

	if _, err := uc.Search(context.Background(), env.clinic.ID, "  "); err != ErrEmptySearchValue {
		t.Errorf("expected ErrEmptySearchValue, got %v", err)
	}
}

func TestSearchListMatchesNameAndCPF(t *testing.T) {
	uc, env := newPatientUsecase(t)
	seedPatient(t, env.db, env.clinic.ID, "maria silva", "12345678901")
	seedPatient(t, env.db, env.clinic.ID, "maria souza", "98765432100")

	patients, err := uc.SearchList(context.Background(), env.clinic.ID, &dto.SearchPatientsListRequest{
		Name: "maria",
		CPF:  "123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 1 || patients[0].CPF != "12345678901" {
		t.Fatalf("expected one match, got %+v", patients)
	}
}
