package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is metadata for an uploaded clinic PDF. The blob itself lives in
// object storage under a key derived from DocName.
type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	Src       string    `gorm:"type:text;not null" json:"src"`
	Size      int64     `gorm:"not null" json:"size"`
	DocName   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"doc_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// StorageKey is the object-storage location of the backing blob.
func (d *Document) StorageKey() string {
	return StorageKeyFor(d.ClinicID, d.DocName)
}

// StorageKeyFor builds the per-clinic object key for a document blob.
func StorageKeyFor(clinicID uuid.UUID, docName string) string {
	return "proclinic/" + clinicID.String() + "/" + docName + ".pdf"
}
