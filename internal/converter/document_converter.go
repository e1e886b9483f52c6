package converter

import (
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
)

// DocumentToResponse converts a Document entity to DocumentResponse DTO
func DocumentToResponse(document *entity.Document) *dto.DocumentResponse {
	if document == nil {
		return nil
	}

	return &dto.DocumentResponse{
		ID:        document.ID,
		Name:      document.Name,
		Category:  document.Category,
		Src:       document.Src,
		Size:      document.Size,
		DocName:   document.DocName,
		CreatedAt: document.CreatedAt,
		UpdatedAt: document.UpdatedAt,
	}
}

// DocumentsToResponses converts a slice of Document entities to DTOs
func DocumentsToResponses(documents []entity.Document) []dto.DocumentResponse {
	responses := make([]dto.DocumentResponse, len(documents))
	for i, document := range documents {
		responses[i] = *DocumentToResponse(&document)
	}
	return responses
}
