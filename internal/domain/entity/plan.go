package entity

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TussEntry is one procedure-code-to-price row of a plan's tuss table.
type TussEntry struct {
	Codigo       string  `json:"codigo"`
	Procedimento string  `json:"procedimento"`
	Price        float64 `json:"price"`
}

// Plan is a health-insurance plan accepted by a clinic, with its credentials
// for the insurer portal and the embedded tuss price list.
type Plan struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID uuid.UUID      `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Name     string         `gorm:"type:varchar(255);not null;index" json:"name"`
	Login    string         `gorm:"type:varchar(255)" json:"login,omitempty"`
	Password string         `gorm:"type:varchar(255)" json:"password,omitempty"`
	Web      string         `gorm:"type:varchar(255)" json:"web,omitempty"`
	Src      string         `gorm:"type:text" json:"src,omitempty"`
	Cod      string         `gorm:"type:varchar(100)" json:"cod,omitempty"`
	Tel      string         `gorm:"type:varchar(30)" json:"tel,omitempty"`
	Email    string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Obs      string         `gorm:"type:text" json:"obs,omitempty"`
	Tuss     datatypes.JSON `gorm:"type:json" json:"tuss,omitempty"`
}

func (Plan) TableName() string {
	return "plans"
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TussEntries decodes the embedded tuss list. An empty column yields an empty
// slice.
func (p *Plan) TussEntries() ([]TussEntry, error) {
	if len(p.Tuss) == 0 {
		return []TussEntry{}, nil
	}
	var entries []TussEntry
	if err := json.Unmarshal(p.Tuss, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpsertTuss updates the price of an existing entry matching codigo, or
// appends a new entry when the code is not present yet. Returns true when an
// existing entry was updated in place.
func (p *Plan) UpsertTuss(codigo, procedimento string, price float64) (bool, error) {
	entries, err := p.TussEntries()
	if err != nil {
		return false, err
	}

	updated := false
	for i := range entries {
		if entries[i].Codigo == codigo {
			entries[i].Price = price
			updated = true
			break
		}
	}
	if !updated {
		entries = append(entries, TussEntry{Codigo: codigo, Procedimento: procedimento, Price: price})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return false, err
	}
	p.Tuss = datatypes.JSON(raw)
	return updated, nil
}
