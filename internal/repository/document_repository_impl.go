package repository

import (
	"errors"

	"proclinic-server/internal/domain/entity"
	domainRepo "proclinic-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(db *gorm.DB, document *entity.Document) error {
	return db.Create(document).Error
}

func (r *documentRepository) Update(db *gorm.DB, document *entity.Document) error {
	return db.Save(document).Error
}

func (r *documentRepository) Delete(db *gorm.DB, id, clinicID uuid.UUID) error {
	return db.Where("id = ? AND clinic_id = ?", id, clinicID).Delete(&entity.Document{}).Error
}

func (r *documentRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := db.Where("id = ? AND clinic_id = ?", id, clinicID).First(&document).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) FindByNameAndClinic(db *gorm.DB, name string, clinicID uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := db.Where("name = ? AND clinic_id = ?", name, clinicID).First(&document).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Document, error) {
	var documents []entity.Document
	err := db.Where("clinic_id = ?", clinicID).Order("created_at desc").Find(&documents).Error
	return documents, err
}
