package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Doctors additionally carry crm/cbo license identifiers.
const (
	RoleRecep  = "recep"
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// User is a clinic staff account. Login is unique across all clinics.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Login    string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"login"`
	Password string    `gorm:"type:text;not null" json:"-"`
	Role     string    `gorm:"type:varchar(20);not null;index" json:"role"`
	CRM      string    `gorm:"type:varchar(20)" json:"crm,omitempty"`
	CBO      string    `gorm:"type:varchar(20)" json:"cbo,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsDoctor reports whether the user holds the doctor role.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
