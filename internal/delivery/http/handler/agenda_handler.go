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

// AgendaHandler serves the combined endpoints: one request loads everything a
// screen needs.
type AgendaHandler struct {
	agendaUsecase usecase.AgendaUsecase
	validator     *validator.CustomValidator
}

func NewAgendaHandler(agendaUsecase usecase.AgendaUsecase, validator *validator.CustomValidator) *AgendaHandler {
	return &AgendaHandler{
		agendaUsecase: agendaUsecase,
		validator:     validator,
	}
}

func (h *AgendaHandler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	agenda, err := h.agendaUsecase.GetAgenda(r.Context(), claims.ClinicID, claims.UserID, claims.Role)
	if err != nil {
		response.InternalServerError(w, "Failed to load agenda")
		return
	}

	response.Success(w, http.StatusOK, "Agenda loaded successfully", agenda)
}

func (h *AgendaHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	dashboard, err := h.agendaUsecase.GetDashboard(r.Context(), claims.ClinicID, claims.UserID, claims.Role)
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard loaded successfully", dashboard)
}

func (h *AgendaHandler) UpdateEditEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.agendaUsecase.UpdateEditEvent(r.Context(), claims.ClinicID, claims.UserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		case usecase.ErrEventNotEditable:
			response.Error(w, http.StatusBadRequest, "Appointment cannot be changed: patient has arrived, is in consultation or was already seen", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
		default:
			response.InternalServerError(w, "Failed to update event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Event updated successfully", event)
}

func (h *AgendaHandler) GetAtend(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patientID, err := uuid.Parse(r.URL.Query().Get("patientId"))
	if err != nil {
		response.BadRequest(w, "Patient id is required")
		return
	}

	atend, err := h.agendaUsecase.GetAtend(r.Context(), claims.ClinicID, claims.UserID, patientID, claims.Role)
	if err != nil {
		response.InternalServerError(w, "Failed to load encounter view")
		return
	}

	response.Success(w, http.StatusOK, "Encounter view loaded successfully", atend)
}

func (h *AgendaHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	q := r.URL.Query()
	req := dto.ReportsRequest{
		Start:  q.Get("start"),
		End:    q.Get("end"),
		Doctor: q.Get("doctor"),
	}

	if req.Start == "" || req.End == "" {
		response.BadRequest(w, "Start or end date not provided")
		return
	}
	if req.Doctor == "" {
		req.Doctor = "todos"
	}

	report, err := h.agendaUsecase.GetReports(r.Context(), claims.ClinicID, claims.Role, &req)
	if err != nil {
		switch err {
		case usecase.ErrReportsForbidden:
			response.Error(w, http.StatusBadRequest, "User does not have permission to access this resource", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
		case usecase.ErrInvalidDoctorID:
			response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		default:
			response.InternalServerError(w, "Failed to load report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report loaded successfully", report)
}
