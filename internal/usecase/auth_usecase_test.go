package usecase

import (
	"context"
	"testing"
	"time"

	"proclinic-server/config"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/repository"
	"proclinic-server/pkg/jwt"
)

func newAuthUsecase(t *testing.T) (AuthUsecase, *testEnv, *fakeSessionStore) {
	t.Helper()
	env := newTestEnv(t)
	sessions := newFakeSessionStore()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	uc := NewAuthUsecase(env.db, testLogger(),
		repository.NewUserRepository(),
		repository.NewClinicRepository(),
		jwtService,
		sessions,
	)
	return uc, env, sessions
}

func TestLogin(t *testing.T) {
	uc, env, sessions := newAuthUsecase(t)
	user := seedUser(t, env.db, env.clinic.ID, "maria", entity.RoleRecep)

	// Login is matched lowercase and trimmed.
	resp, err := uc.Login(context.Background(), &dto.LoginRequest{Login: " Maria ", Password: "123456"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Auth || resp.Token == "" {
		t.Error("expected an authenticated response with a token")
	}
	if resp.User.ID != user.ID {
		t.Errorf("user mismatch: got %s, want %s", resp.User.ID, user.ID)
	}
	if resp.Clinic == nil || resp.Clinic.ID != env.clinic.ID {
		t.Error("the clinic profile must come along with the login")
	}

	claims, err := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour}).ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	live, err := sessions.Exists(context.Background(), user.ID.String(), claims.TokenID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !live {
		t.Error("login must register the session")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	uc, env, _ := newAuthUsecase(t)
	seedUser(t, env.db, env.clinic.ID, "maria", entity.RoleRecep)

	if _, err := uc.Login(context.Background(), &dto.LoginRequest{Login: "maria", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Login(context.Background(), &dto.LoginRequest{Login: "nobody", Password: "123456"}); err != ErrInvalidCredentials {
		t.Errorf("unknown login: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	uc, env, sessions := newAuthUsecase(t)
	user := seedUser(t, env.db, env.clinic.ID, "maria", entity.RoleRecep)

	if err := sessions.Save(context.Background(), user.ID.String(), "token-1", time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Logout(context.Background(), user.ID, "token-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	live, _ := sessions.Exists(context.Background(), user.ID.String(), "token-1")
	if live {
		t.Error("logout must revoke the session")
	}
}

func TestCreateUserRequiresDoctorCodes(t *testing.T) {
	uc, env, _ := newAuthUsecase(t)

	_, err := uc.CreateUser(context.Background(), env.clinic.ID, &dto.CreateUserRequest{
		Name:     "dr fulano",
		Login:    "fulano",
		Password: "123456",
		Role:     entity.RoleDoctor,
	})
	if err != ErrMissingDoctorCodes {
		t.Fatalf("expected ErrMissingDoctorCodes, got %v", err)
	}

	created, err := uc.CreateUser(context.Background(), env.clinic.ID, &dto.CreateUserRequest{
		Name:     "dr fulano",
		Login:    "fulano",
		Password: "123456",
		Role:     entity.RoleDoctor,
		CRM:      "12345678",
		CBO:      "225125",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Role != entity.RoleDoctor || created.CRM != "12345678" {
		t.Errorf("doctor not created as expected: %+v", created)
	}
}

func TestCreateUserLoginTaken(t *testing.T) {
	uc, env, _ := newAuthUsecase(t)
	seedUser(t, env.db, env.clinic.ID, "maria", entity.RoleRecep)

	_, err := uc.CreateUser(context.Background(), env.clinic.ID, &dto.CreateUserRequest{
		Name:     "outra maria",
		Login:    " MARIA ",
		Password: "123456",
		Role:     entity.RoleRecep,
	})
	if err != ErrLoginAlreadyExists {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	uc, env, sessions := newAuthUsecase(t)
	user := seedUser(t, env.db, env.clinic.ID, "maria", entity.RoleRecep)

	_, err := uc.UpdateUser(context.Background(), user.ID, entity.RoleRecep, &dto.UpdateUserRequest{
		Name:        "maria silva",
		Login:       "maria",
		OldPassword: "wrong",
		NewPassword: "654321",
	})
	if err != ErrWrongOldPassword {
		t.Fatalf("expected ErrWrongOldPassword, got %v", err)
	}

	resp, err := uc.UpdateUser(context.Background(), user.ID, entity.RoleRecep, &dto.UpdateUserRequest{
		Name:        "maria silva",
		Login:       "maria",
		OldPassword: "123456",
		NewPassword: "654321",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("an update must issue a fresh token")
	}
	if resp.User.Name != "maria silva" {
		t.Errorf("name not updated: %+v", resp.User)
	}

	if _, err := uc.Login(context.Background(), &dto.LoginRequest{Login: "maria", Password: "654321"}); err != nil {
		t.Errorf("new password must work: %v", err)
	}

	claims, err := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour}).ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("re-issued token does not validate: %v", err)
	}
	live, _ := sessions.Exists(context.Background(), user.ID.String(), claims.TokenID)
	if !live {
		t.Error("the re-issued token must have a live session")
	}
}

func TestGetDoctorsOnlyListsDoctors(t *testing.T) {
	uc, env, _ := newAuthUsecase(t)
	seedUser(t, env.db, env.clinic.ID, "maria", entity.RoleRecep)
	doctor := seedUser(t, env.db, env.clinic.ID, "doc1", entity.RoleDoctor)
	otherClinic := seedClinic(t, env.db)
	seedUser(t, env.db, otherClinic.ID, "doc2", entity.RoleDoctor)

	doctors, err := uc.GetDoctors(context.Background(), env.clinic.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 1 || doctors[0].ID != doctor.ID {
		t.Fatalf("expected only the clinic's doctor, got %+v", doctors)
	}
}
