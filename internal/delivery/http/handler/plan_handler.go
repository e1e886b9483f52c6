package handler

import (
	"encoding/json"
	"net/http"

	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/delivery/http/middleware"
	"proclinic-server/internal/usecase"
	"proclinic-server/pkg/response"
	"proclinic-server/pkg/validator"
)

type PlanHandler struct {
	planUsecase usecase.PlanUsecase
	validator   *validator.CustomValidator
}

func NewPlanHandler(planUsecase usecase.PlanUsecase, validator *validator.CustomValidator) *PlanHandler {
	return &PlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

func (h *PlanHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	plans, err := h.planUsecase.List(r.Context(), claims.ClinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list plans")
		return
	}

	response.Success(w, http.StatusOK, "Plans found successfully", plans)
}

func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Create(r.Context(), claims.ClinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPlanNameTaken:
			response.Error(w, http.StatusBadRequest, "Plan name already in use", nil)
		default:
			response.InternalServerError(w, "Failed to create plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Health plan created successfully", plan)
}

func (h *PlanHandler) EditPlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.EditPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Edit(r.Context(), claims.ClinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPlanNameTaken:
			response.Error(w, http.StatusBadRequest, "Plan name already in use", nil)
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Plan not found")
		default:
			response.InternalServerError(w, "Failed to edit plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Health plan edited successfully", plan)
}

func (h *PlanHandler) EditTussPlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.EditTussRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.EditTuss(r.Context(), claims.ClinicID, claims.Role, &req)
	if err != nil {
		switch err {
		case usecase.ErrTussEditForbidden:
			response.Error(w, http.StatusBadRequest, "User does not have permission to change tuss values", nil)
		case usecase.ErrPlanNotFound:
			response.NotFound(w, "Plan not found")
		default:
			response.InternalServerError(w, "Failed to edit tuss")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Tuss saved successfully", plan)
}
