package converter

import (
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
)

// EventToResponse converts an Event entity to the full EventResponse DTO
func EventToResponse(event *entity.Event) *dto.EventResponse {
	if event == nil {
		return nil
	}

	return &dto.EventResponse{
		ID:          event.ID,
		UserID:      event.UserID,
		PatientID:   event.PatientID,
		PatientNasc: event.PatientNasc,
		Title:       event.Title,
		Phone:       event.Phone,
		Plan:        event.Plan,
		PlanNumber:  event.PlanNumber,
		Doctor:      event.DoctorID,
		Start:       event.Start,
		End:         event.End,
		AtendStart:  event.AtendStart,
		Type:        event.Type,
		Status:      string(event.Status),
		Blocked:     event.Blocked,
		Confirm:     event.Confirm,
		Confirmed:   event.Confirmed,
		Obs:         event.Obs,
	}
}

// EventToAgendaResponse converts an Event entity to the calendar projection
func EventToAgendaResponse(event *entity.Event) *dto.AgendaEventResponse {
	if event == nil {
		return nil
	}

	return &dto.AgendaEventResponse{
		ID:          event.ID,
		PatientID:   event.PatientID,
		PatientNasc: event.PatientNasc,
		Title:       event.Title,
		Phone:       event.Phone,
		Plan:        event.Plan,
		PlanNumber:  event.PlanNumber,
		Doctor:      event.DoctorID,
		Start:       event.Start,
		End:         event.End,
		Type:        event.Type,
		Status:      string(event.Status),
		Blocked:     event.Blocked,
		Confirmed:   event.Confirmed,
		Obs:         event.Obs,
	}
}

// EventsToAgendaResponses converts Event entities to calendar projections
func EventsToAgendaResponses(events []entity.Event) []dto.AgendaEventResponse {
	responses := make([]dto.AgendaEventResponse, len(events))
	for i, event := range events {
		responses[i] = *EventToAgendaResponse(&event)
	}
	return responses
}

// EventToWaitResponse converts an Event entity to the wait-queue projection
func EventToWaitResponse(event *entity.Event) *dto.WaitEventResponse {
	if event == nil {
		return nil
	}

	return &dto.WaitEventResponse{
		ID:          event.ID,
		PatientID:   event.PatientID,
		PatientNasc: event.PatientNasc,
		Title:       event.Title,
		Plan:        event.Plan,
		Doctor:      event.DoctorID,
		Start:       event.Start,
		AtendStart:  event.AtendStart,
		Confirm:     event.Confirm,
		Type:        event.Type,
		Status:      string(event.Status),
	}
}

// EventsToWaitResponses converts Event entities to wait-queue projections
func EventsToWaitResponses(events []entity.Event) []dto.WaitEventResponse {
	responses := make([]dto.WaitEventResponse, len(events))
	for i, event := range events {
		responses[i] = *EventToWaitResponse(&event)
	}
	return responses
}

// EventsToDashboardResponses converts Event entities to dashboard projections
func EventsToDashboardResponses(events []entity.Event) []dto.DashboardEventResponse {
	responses := make([]dto.DashboardEventResponse, len(events))
	for i, event := range events {
		responses[i] = dto.DashboardEventResponse{
			Doctor:      event.DoctorID,
			Status:      string(event.Status),
			Type:        event.Type,
			Plan:        event.Plan,
			Confirmed:   event.Confirmed,
			Start:       event.Start,
			PatientNasc: event.PatientNasc,
		}
	}
	return responses
}

// EventsToHistoryResponses converts Event entities to history projections
func EventsToHistoryResponses(events []entity.Event) []dto.HistoryEventResponse {
	responses := make([]dto.HistoryEventResponse, len(events))
	for i, event := range events {
		responses[i] = dto.HistoryEventResponse{
			ID:          event.ID,
			PatientID:   event.PatientID,
			PatientNasc: event.PatientNasc,
			Title:       event.Title,
			Plan:        event.Plan,
			Doctor:      event.DoctorID,
			AtendStart:  event.AtendStart,
			Type:        event.Type,
		}
	}
	return responses
}

// EventsToReportResponses converts Event entities to period-report rows.
// withDoctor controls whether the doctor column is included.
func EventsToReportResponses(events []entity.Event, withDoctor bool) []dto.ReportEventResponse {
	responses := make([]dto.ReportEventResponse, len(events))
	for i, event := range events {
		row := dto.ReportEventResponse{
			Plan:  event.Plan,
			Start: event.Start,
		}
		if withDoctor {
			doctor := event.DoctorID
			row.Doctor = &doctor
		}
		responses[i] = row
	}
	return responses
}
