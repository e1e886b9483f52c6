package converter

import (
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Login: user.Login,
		Role:  user.Role,
		CRM:   user.CRM,
		CBO:   user.CBO,
	}
}

// UsersToResponses converts a slice of User entities to slice of UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = *UserToResponse(&user)
	}
	return responses
}

// UserToDoctorResponse converts a doctor User entity to the picker projection
func UserToDoctorResponse(user *entity.User) *dto.DoctorResponse {
	if user == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:   user.ID,
		Name: user.Name,
		CRM:  user.CRM,
		CBO:  user.CBO,
		Role: user.Role,
	}
}

// UsersToDoctorResponses converts doctor User entities to DoctorResponse DTOs
func UsersToDoctorResponses(users []entity.User) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(users))
	for i, user := range users {
		responses[i] = *UserToDoctorResponse(&user)
	}
	return responses
}
