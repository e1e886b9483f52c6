package dto

import (
	"time"

	"github.com/google/uuid"
)

// Document create/update travel as multipart forms; these carry the parsed
// text fields plus the optional file payload.

type CreateDocumentRequest struct {
	Name     string `validate:"required"`
	Category string `validate:"required"`
	FileName string
	MimeType string
	Data     []byte
}

type UpdateDocumentRequest struct {
	ID       uuid.UUID `validate:"required"`
	Name     string    `validate:"required"`
	Category string    `validate:"required"`
	FileName string
	MimeType string
	Data     []byte
}

type DocumentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Src       string    `json:"src"`
	Size      int64     `json:"size"`
	DocName   string    `json:"doc_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
