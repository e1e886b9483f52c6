package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"proclinic-server/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testDB opens a fresh in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Clinic{},
		&entity.User{},
		&entity.Patient{},
		&entity.Event{},
		&entity.MedicalRecord{},
		&entity.Plan{},
		&entity.Document{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// testEnv bundles the database and a seeded clinic every scenario needs.
type testEnv struct {
	db     *gorm.DB
	clinic *entity.Clinic
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testDB(t)
	return &testEnv{db: db, clinic: seedClinic(t, db)}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeSessionStore is an in-memory cache.SessionStore.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]bool{}}
}

func (s *fakeSessionStore) key(userID, tokenID string) string {
	return userID + ":" + tokenID
}

func (s *fakeSessionStore) Save(_ context.Context, userID, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[s.key(userID, tokenID)] = true
	return nil
}

func (s *fakeSessionStore) Exists(_ context.Context, userID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[s.key(userID, tokenID)], nil
}

func (s *fakeSessionStore) Revoke(_ context.Context, userID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, s.key(userID, tokenID))
	return nil
}

// fakeObjectStorage is an in-memory storage.ObjectStorage.
type fakeObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: map[string][]byte{}}
}

func (s *fakeObjectStorage) Upload(_ context.Context, key, _ string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return "https://blobs.test/" + key, nil
}

func (s *fakeObjectStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func seedClinic(t *testing.T, db *gorm.DB) *entity.Clinic {
	t.Helper()
	clinic := &entity.Clinic{
		Name:    "clinica teste",
		Address: "rua um, 100",
		Phone:   "1133334444",
		CNPJ:    fmt.Sprintf("%d", time.Now().UnixNano()),
		Start:   "08:00",
		End:     "18:00",
	}
	if err := db.Create(clinic).Error; err != nil {
		t.Fatalf("failed to seed clinic: %v", err)
	}
	return clinic
}

func seedUser(t *testing.T, db *gorm.DB, clinicID uuid.UUID, login, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &entity.User{
		ClinicID: clinicID,
		Name:     "user " + login,
		Login:    login,
		Password: string(hash),
		Role:     role,
	}
	if role == entity.RoleDoctor {
		user.CRM = "12345678"
		user.CBO = "225125"
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedPatient(t *testing.T, db *gorm.DB, clinicID uuid.UUID, name, cpf string) *entity.Patient {
	t.Helper()
	patient := &entity.Patient{
		ClinicID: clinicID,
		Name:     name,
		Nasc:     time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		CPF:      cpf,
		Mother:   "mae de " + name,
		Phone:    "11999990000",
		Gender:   entity.GenderMas,
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	return patient
}

func seedEvent(t *testing.T, db *gorm.DB, clinicID, userID, doctorID uuid.UUID, patientID *uuid.UUID, status entity.EventStatus, start time.Time) *entity.Event {
	t.Helper()
	event := &entity.Event{
		ClinicID:  clinicID,
		UserID:    userID,
		PatientID: patientID,
		Title:     "consulta teste",
		DoctorID:  doctorID,
		Start:     start,
		End:       start.Add(30 * time.Minute),
		Type:      "consulta",
		Status:    status,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}
	return event
}

// nextWeekday returns the next occurrence of wd at 10:00 in the clinic zone,
// at least a day in the future.
func nextWeekday(wd time.Weekday) time.Time {
	d := time.Now().In(clinicZone).AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, clinicZone)
}

// lastWeekday returns the previous occurrence of wd at 10:00 in the clinic
// zone, at least a day in the past.
func lastWeekday(wd time.Weekday) time.Time {
	d := time.Now().In(clinicZone).AddDate(0, 0, -1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, -1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, clinicZone)
}
