package handler

import (
	"encoding/json"
	"net/http"

	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/delivery/http/middleware"
	"proclinic-server/internal/usecase"
	"proclinic-server/pkg/response"
	"proclinic-server/pkg/validator"

	"github.com/google/uuid"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), claims.ClinicID, claims.UserID, claims.Role, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordCreateForbidden:
			response.Error(w, http.StatusBadRequest, "User does not have permission to create a medical record", nil)
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		case usecase.ErrUserNotFound:
			response.Error(w, http.StatusBadRequest, "User not found", nil)
		case usecase.ErrEventNotFound:
			response.Error(w, http.StatusBadRequest, "Event not found", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *MedicalRecordHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patientID, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		response.BadRequest(w, "Patient id is required")
		return
	}

	records, err := h.recordUsecase.GetByPatient(r.Context(), claims.ClinicID, patientID, claims.Role)
	if err != nil {
		if err == usecase.ErrRecordReadForbidden {
			response.Error(w, http.StatusBadRequest, "User does not have permission to read medical records", nil)
			return
		}
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records found successfully", records)
}

func (h *MedicalRecordHandler) InitAtend(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.InitAtendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.recordUsecase.InitAtend(r.Context(), claims.ClinicID, claims.Role, &req)
	if err != nil {
		switch err {
		case usecase.ErrAtendForbidden:
			response.Error(w, http.StatusBadRequest, "User does not have permission to start a consultation", nil)
		case usecase.ErrAtendAlreadyOpen:
			response.Error(w, http.StatusBadRequest, "Patient already has an open consultation", nil)
		case usecase.ErrEventNotFound:
			response.Error(w, http.StatusBadRequest, "Event not found", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
		default:
			response.InternalServerError(w, "Failed to start consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Status changed successfully", event)
}
