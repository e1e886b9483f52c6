package converter

import (
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:      clinic.ID,
		Name:    clinic.Name,
		Address: clinic.Address,
		Phone:   clinic.Phone,
		CNPJ:    clinic.CNPJ,
		Start:   clinic.Start,
		End:     clinic.End,
		Src:     clinic.Src,
	}
}
