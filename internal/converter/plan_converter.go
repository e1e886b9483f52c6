package converter

import (
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
)

// PlanToResponse converts a Plan entity to PlanResponse DTO.
// A tuss column that fails to decode is surfaced as an empty list rather than
// failing the whole read.
func PlanToResponse(plan *entity.Plan) *dto.PlanResponse {
	if plan == nil {
		return nil
	}

	tuss, err := plan.TussEntries()
	if err != nil {
		tuss = []entity.TussEntry{}
	}

	return &dto.PlanResponse{
		ID:       plan.ID,
		Name:     plan.Name,
		Login:    plan.Login,
		Password: plan.Password,
		Web:      plan.Web,
		Src:      plan.Src,
		Cod:      plan.Cod,
		Tel:      plan.Tel,
		Email:    plan.Email,
		Obs:      plan.Obs,
		Tuss:     tuss,
	}
}

// PlansToResponses converts a slice of Plan entities to PlanResponse DTOs
func PlansToResponses(plans []entity.Plan) []dto.PlanResponse {
	responses := make([]dto.PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = *PlanToResponse(&plan)
	}
	return responses
}
