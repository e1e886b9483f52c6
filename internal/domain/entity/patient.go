package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient genders.
const (
	GenderMas = "mas"
	GenderFem = "fem"
)

// Patient is a clinic patient record. Name and mother are stored
// diacritic-stripped and lowercased so prefix search stays accent-insensitive.
type Patient struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID      uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Name          string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Nasc          time.Time `gorm:"not null" json:"nasc"`
	CPF           string    `gorm:"type:varchar(11);index" json:"cpf,omitempty"`
	Mother        string    `gorm:"type:varchar(255);not null" json:"mother"`
	Phone         string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email         string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Plan          string    `gorm:"type:varchar(255)" json:"plan,omitempty"`
	PlanNumber    string    `gorm:"type:varchar(100)" json:"plan_number,omitempty"`
	Gender        string    `gorm:"type:varchar(3);not null" json:"gender"`
	Address       string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	AddressNumber string    `gorm:"type:varchar(20)" json:"address_number,omitempty"`
	Neighborhood  string    `gorm:"type:varchar(100)" json:"neighborhood,omitempty"`
	City          string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	State         string    `gorm:"type:varchar(50)" json:"state,omitempty"`
	CEP           string    `gorm:"type:varchar(10)" json:"cep,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
