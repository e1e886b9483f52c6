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

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login authenticates a staff member and returns the session token together
// with the user and clinic payloads the frontend boots from.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusBadRequest, "Invalid login or password", nil)
		case usecase.ErrClinicNotFound:
			response.Error(w, http.StatusBadRequest, "Clinic not found", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Logged in successfully", result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), claims.UserID, claims.TokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.CreateUser(r.Context(), claims.ClinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLoginAlreadyExists:
			response.Error(w, http.StatusBadRequest, "Login already in use by another user", nil)
		case usecase.ErrMissingDoctorCodes:
			response.Error(w, http.StatusBadRequest, "Fill in the CRM and CBO fields", nil)
		default:
			response.InternalServerError(w, "Failed to create user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.UpdateUser(r.Context(), claims.UserID, claims.Role, &req)
	if err != nil {
		switch err {
		case usecase.ErrLoginAlreadyExists:
			response.Error(w, http.StatusBadRequest, "Login already in use by another user", nil)
		case usecase.ErrMissingDoctorCodes:
			response.Error(w, http.StatusBadRequest, "Fill in the CRM and CBO fields", nil)
		case usecase.ErrWrongOldPassword:
			response.Error(w, http.StatusBadRequest, "Current password does not match", nil)
		case usecase.ErrUserNotFound:
			response.Error(w, http.StatusBadRequest, "User not found", nil)
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", result)
}

func (h *AuthHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	doctors, err := h.authUsecase.GetDoctors(r.Context(), claims.ClinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors found successfully", doctors)
}

func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authUsecase.GetUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users found successfully", users)
}
