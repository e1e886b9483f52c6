package jwt

import (
	"testing"
	"time"

	"proclinic-server/config"

	"github.com/google/uuid"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret: secret,
		Expiry: 10 * time.Hour,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService("test-secret")

	userID := uuid.New()
	clinicID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, "maria silva", "maria", "recep", clinicID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || tokenID == "" {
		t.Fatal("expected a token and a token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id mismatch: got %s, want %s", claims.UserID, userID)
	}
	if claims.ClinicID != clinicID {
		t.Errorf("clinic id mismatch: got %s, want %s", claims.ClinicID, clinicID)
	}
	if claims.Name != "maria silva" || claims.Login != "maria" || claims.Role != "recep" {
		t.Errorf("unexpected identity claims: %+v", claims)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id mismatch: got %s, want %s", claims.TokenID, tokenID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService("secret-a").GenerateToken(uuid.New(), "n", "l", "admin", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := testService("secret-b").ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := testService("s").ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected validation to fail")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := testService("s")
	_, first, err := svc.GenerateToken(uuid.New(), "n", "l", "doctor", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, second, err := svc.GenerateToken(uuid.New(), "n", "l", "doctor", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("each session must get its own token id")
	}
}
