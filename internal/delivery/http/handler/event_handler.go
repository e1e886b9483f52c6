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

type EventHandler struct {
	eventUsecase usecase.EventUsecase
	validator    *validator.CustomValidator
}

func NewEventHandler(eventUsecase usecase.EventUsecase, validator *validator.CustomValidator) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
		validator:    validator,
	}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.eventUsecase.Create(r.Context(), claims.ClinicID, claims.UserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrWeekendNotAllowed:
			response.Error(w, http.StatusBadRequest, "Appointments cannot be scheduled on weekends", nil)
		case usecase.ErrStartInPast:
			response.Error(w, http.StatusBadRequest, "Selected date is earlier than today", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
		default:
			response.InternalServerError(w, "Failed to create event")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Event created successfully", event)
}

// GetEvents lists a week of appointments starting at the date query param.
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	events, err := h.eventUsecase.GetWeekEvents(r.Context(), claims.ClinicID, claims.UserID, claims.Role, date)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.BadRequest(w, "Invalid date format")
			return
		}
		response.InternalServerError(w, "Failed to list events")
		return
	}

	response.Success(w, http.StatusOK, "Events found successfully", events)
}

func (h *EventHandler) GetWaitEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	events, err := h.eventUsecase.GetWaitEvents(r.Context(), claims.ClinicID, claims.UserID, claims.Role)
	if err != nil {
		response.InternalServerError(w, "Failed to list wait events")
		return
	}

	response.Success(w, http.StatusOK, "Wait events found successfully", events)
}

func (h *EventHandler) GetDoctorEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	events, err := h.eventUsecase.GetDoctorEvents(r.Context(), claims.ClinicID, claims.UserID)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctor events")
		return
	}

	response.Success(w, http.StatusOK, "Events found successfully", events)
}

func (h *EventHandler) GetHistoryEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	history, err := h.eventUsecase.GetHistoryEvents(r.Context(), claims.ClinicID, claims.UserID, claims.Role)
	if err != nil {
		response.InternalServerError(w, "Failed to load history")
		return
	}

	response.Success(w, http.StatusOK, "History found successfully", history)
}

func (h *EventHandler) DropEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.DropEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.eventUsecase.Drop(r.Context(), claims.ClinicID, claims.UserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		case usecase.ErrEventNotEditable:
			response.Error(w, http.StatusBadRequest, "Appointment cannot be changed: patient has arrived, is in consultation or was already seen", nil)
		case usecase.ErrWeekendNotAllowed:
			response.Error(w, http.StatusBadRequest, "Appointments cannot be scheduled on weekends", nil)
		case usecase.ErrStartInPast:
			response.Error(w, http.StatusBadRequest, "Selected date is earlier than today", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
		default:
			response.InternalServerError(w, "Failed to reschedule event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Event updated successfully", event)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
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

	event, err := h.eventUsecase.Update(r.Context(), claims.ClinicID, claims.UserID, &req)
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

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		response.BadRequest(w, "Event id is required")
		return
	}

	if err := h.eventUsecase.Delete(r.Context(), claims.ClinicID, id); err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		case usecase.ErrEventNotDeletable:
			response.Error(w, http.StatusBadRequest, "Appointment cannot be removed: patient is waiting, in consultation or was already seen", nil)
		default:
			response.InternalServerError(w, "Failed to delete event")
		}
		return
	}

	response.Success(w, http.StatusOK, "Event removed successfully", nil)
}

func (h *EventHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.eventUsecase.ChangeStatus(r.Context(), claims.ClinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format", nil)
		default:
			response.InternalServerError(w, "Failed to change status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Status changed successfully", event)
}

func (h *EventHandler) ChangeConfirmed(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.ChangeConfirmedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	event, err := h.eventUsecase.ChangeConfirmed(r.Context(), claims.ClinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEventNotFound:
			response.NotFound(w, "Event not found")
		default:
			response.InternalServerError(w, "Failed to change confirmation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Confirmation changed successfully", event)
}
