package handler

import (
	"io"
	"net/http"
	"strings"

	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/delivery/http/middleware"
	"proclinic-server/internal/usecase"
	"proclinic-server/pkg/response"
	"proclinic-server/pkg/validator"

	"github.com/google/uuid"
)

// Uploads arrive as multipart forms. The parse limit leaves headroom above
// the 4MB document cap so oversized files get the proper error instead of a
// parse failure.
const multipartMemoryLimit = 8 << 20

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
	validator       *validator.CustomValidator
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase, validator *validator.CustomValidator) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
		validator:       validator,
	}
}

func (h *DocumentHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	documents, err := h.documentUsecase.List(r.Context(), claims.ClinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents found successfully", documents)
}

// readUpload pulls the optional "file" part out of a multipart form.
func readUpload(r *http.Request) (data []byte, fileName, mimeType string, err error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", "", nil
		}
		return nil, "", "", err
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", "", err
	}
	return data, header.Filename, header.Header.Get("Content-Type"), nil
}

func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	data, fileName, mimeType, err := readUpload(r)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded file")
		return
	}

	req := dto.CreateDocumentRequest{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Category: strings.TrimSpace(r.FormValue("category")),
		FileName: fileName,
		MimeType: mimeType,
		Data:     data,
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.documentUsecase.Create(r.Context(), claims.ClinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDocumentNameTaken:
			response.Error(w, http.StatusBadRequest, "A document with this name already exists", nil)
		case usecase.ErrDocumentNotPDF:
			response.Error(w, http.StatusBadRequest, "Only PDF files are allowed", nil)
		case usecase.ErrDocumentTooLarge:
			response.Error(w, http.StatusBadRequest, "File exceeds the 4MB limit", nil)
		case usecase.ErrDocumentNoFile:
			response.Error(w, http.StatusBadRequest, "No file uploaded", nil)
		default:
			response.InternalServerError(w, "Failed to create document")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Document created successfully", document)
}

func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	id, err := uuid.Parse(r.FormValue("id"))
	if err != nil {
		response.BadRequest(w, "Document id is required")
		return
	}

	data, fileName, mimeType, err := readUpload(r)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded file")
		return
	}

	req := dto.UpdateDocumentRequest{
		ID:       id,
		Name:     strings.TrimSpace(r.FormValue("name")),
		Category: strings.TrimSpace(r.FormValue("category")),
		FileName: fileName,
		MimeType: mimeType,
		Data:     data,
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.documentUsecase.Update(r.Context(), claims.ClinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDocumentNotFound:
			response.Error(w, http.StatusBadRequest, "Document not found. Try again!", nil)
		case usecase.ErrDocumentNameTaken:
			response.Error(w, http.StatusBadRequest, "A document with this name already exists", nil)
		case usecase.ErrDocumentNotPDF:
			response.Error(w, http.StatusBadRequest, "Only PDF files are allowed", nil)
		case usecase.ErrDocumentTooLarge:
			response.Error(w, http.StatusBadRequest, "File exceeds the 4MB limit", nil)
		default:
			response.InternalServerError(w, "Failed to update document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document updated successfully", document)
}

func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		response.BadRequest(w, "Document id is required")
		return
	}

	if err := h.documentUsecase.Delete(r.Context(), claims.ClinicID, id); err != nil {
		if err == usecase.ErrDocumentNotFound {
			response.NotFound(w, "Document not found")
			return
		}
		response.InternalServerError(w, "Failed to delete document")
		return
	}

	response.Success(w, http.StatusOK, "Document removed successfully", nil)
}
