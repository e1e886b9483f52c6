package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"proclinic-server/internal/converter"
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
	"proclinic-server/internal/domain/repository"
	"proclinic-server/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	maxDocumentSize = 4 << 20 // 4MB
	pdfContentType  = "application/pdf"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDocumentNameTaken = errors.New("a document with this name already exists")
	ErrDocumentNotPDF    = errors.New("only PDF files are allowed")
	ErrDocumentTooLarge  = errors.New("file exceeds the 4MB limit")
	ErrDocumentNoFile    = errors.New("no file uploaded")
)

type DocumentUsecase interface {
	List(ctx context.Context, clinicID uuid.UUID) ([]dto.DocumentResponse, error)
	Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	Update(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, clinicID, documentID uuid.UUID) error
}

type documentUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	docRepo repository.DocumentRepository
	blobs   storage.ObjectStorage
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	docRepo repository.DocumentRepository,
	blobs storage.ObjectStorage,
) DocumentUsecase {
	return &documentUsecase{
		db:      db,
		log:     log,
		docRepo: docRepo,
		blobs:   blobs,
	}
}

func (u *documentUsecase) List(ctx context.Context, clinicID uuid.UUID) ([]dto.DocumentResponse, error) {
	documents, err := u.docRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list documents: %+v", err)
		return nil, err
	}
	return converter.DocumentsToResponses(documents), nil
}

func checkPDF(data []byte, mimeType string) error {
	if len(data) == 0 {
		return ErrDocumentNoFile
	}
	if mimeType != pdfContentType {
		return ErrDocumentNotPDF
	}
	if len(data) > maxDocumentSize {
		return ErrDocumentTooLarge
	}
	return nil
}

// Create uploads the blob first and only then inserts the metadata row, so a
// failed upload never leaves a dangling record.
func (u *documentUsecase) Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exist, err := u.docRepo.FindByNameAndClinic(tx, req.Name, clinicID)
	if err != nil {
		u.log.Warnf("Failed to check document name: %+v", err)
		return nil, err
	}
	if exist != nil {
		return nil, ErrDocumentNameTaken
	}

	if err := checkPDF(req.Data, req.MimeType); err != nil {
		return nil, err
	}

	docName := strconv.FormatInt(time.Now().UnixMilli(), 10)
	key := entity.StorageKeyFor(clinicID, docName)

	url, err := u.blobs.Upload(ctx, key, pdfContentType, req.Data)
	if err != nil {
		u.log.Warnf("Failed to upload document: %+v", err)
		return nil, err
	}

	document := &entity.Document{
		ClinicID: clinicID,
		Name:     req.Name,
		Category: req.Category,
		Src:      url,
		Size:     int64(len(req.Data)),
		DocName:  docName,
	}

	if err := u.docRepo.Create(tx, document); err != nil {
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.DocumentToResponse(document), nil
}

// Update edits the metadata, and when a new file comes along replaces the
// blob under the document's existing storage key.
func (u *documentUsecase) Update(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	document, err := u.docRepo.FindByIDAndClinic(tx, req.ID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}

	exist, err := u.docRepo.FindByNameAndClinic(tx, req.Name, clinicID)
	if err != nil {
		u.log.Warnf("Failed to check document name: %+v", err)
		return nil, err
	}
	if exist != nil && exist.ID != req.ID {
		return nil, ErrDocumentNameTaken
	}

	document.Name = req.Name
	document.Category = req.Category

	if len(req.Data) > 0 {
		if err := checkPDF(req.Data, req.MimeType); err != nil {
			return nil, err
		}

		key := document.StorageKey()
		if err := u.blobs.Delete(ctx, key); err != nil {
			u.log.Warnf("Failed to delete old blob: %+v", err)
			return nil, err
		}
		url, err := u.blobs.Upload(ctx, key, pdfContentType, req.Data)
		if err != nil {
			u.log.Warnf("Failed to upload document: %+v", err)
			return nil, err
		}
		document.Src = url
		document.Size = int64(len(req.Data))
	}

	if err := u.docRepo.Update(tx, document); err != nil {
		u.log.Warnf("Failed to update document: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.DocumentToResponse(document), nil
}

// Delete removes the metadata row and the backing blob concurrently.
func (u *documentUsecase) Delete(ctx context.Context, clinicID, documentID uuid.UUID) error {
	document, err := u.docRepo.FindByIDAndClinic(u.db.WithContext(ctx), documentID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return err
	}
	if document == nil {
		return ErrDocumentNotFound
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return u.docRepo.Delete(u.db.WithContext(gctx), documentID, clinicID)
	})
	g.Go(func() error {
		return u.blobs.Delete(gctx, document.StorageKey())
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to delete document: %+v", err)
		return err
	}
	return nil
}
