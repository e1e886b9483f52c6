package converter

import (
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            patient.ID,
		Name:          patient.Name,
		Nasc:          patient.Nasc,
		CPF:           patient.CPF,
		Mother:        patient.Mother,
		Phone:         patient.Phone,
		Email:         patient.Email,
		Plan:          patient.Plan,
		PlanNumber:    patient.PlanNumber,
		Gender:        patient.Gender,
		Address:       patient.Address,
		AddressNumber: patient.AddressNumber,
		Neighborhood:  patient.Neighborhood,
		City:          patient.City,
		State:         patient.State,
		CEP:           patient.CEP,
	}
}

// PatientToSearchResponse converts a Patient entity to the quick-search projection
func PatientToSearchResponse(patient *entity.Patient) *dto.PatientSearchResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientSearchResponse{
		ID:         patient.ID,
		Name:       patient.Name,
		Nasc:       patient.Nasc,
		CPF:        patient.CPF,
		Phone:      patient.Phone,
		Email:      patient.Email,
		Plan:       patient.Plan,
		PlanNumber: patient.PlanNumber,
	}
}

// PatientsToSearchResponses converts Patient entities to search projections
func PatientsToSearchResponses(patients []entity.Patient) []dto.PatientSearchResponse {
	responses := make([]dto.PatientSearchResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToSearchResponse(&patient)
	}
	return responses
}

// PatientsToResponses converts a slice of Patient entities to full DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}
