package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clinic is the tenant record. Every other entity carries its id.
type Clinic struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Address string    `gorm:"type:varchar(255);not null" json:"address"`
	Phone   string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	CNPJ    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"cnpj"`
	Start   string    `gorm:"type:varchar(10);not null" json:"start"`
	End     string    `gorm:"type:varchar(10);not null" json:"end"`
	Src     string    `gorm:"type:text" json:"src,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}

func (c *Clinic) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
