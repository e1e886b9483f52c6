package converter

import (
	"proclinic-server/internal/delivery/dto"
	"proclinic-server/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to the full DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:             record.ID,
		PatientID:      record.PatientID,
		DoctorID:       record.DoctorID,
		Date:           record.Date,
		DateStart:      record.DateStart,
		DateEnd:        record.DateEnd,
		DateConfirm:    record.DateConfirm,
		Complaint:      record.Complaint,
		CurrentHistory: record.CurrentHistory,
		MedicalHistory: record.MedicalHistory,
		PhysicalExam:   record.PhysicalExam,
		Diagnostic:     record.Diagnostic,
		Conduct:        record.Conduct,
		Prescription:   record.Prescription,
	}
}

// MedicalRecordsToResponses converts MedicalRecord entities to full DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		responses[i] = *MedicalRecordToResponse(&record)
	}
	return responses
}

// MedicalRecordsToRecepResponses converts MedicalRecord entities to the
// receptionist projection, stripping all clinical content.
func MedicalRecordsToRecepResponses(records []entity.MedicalRecord) []dto.RecepMedicalRecordResponse {
	responses := make([]dto.RecepMedicalRecordResponse, len(records))
	for i, record := range records {
		responses[i] = dto.RecepMedicalRecordResponse{
			DoctorID:    record.DoctorID,
			Date:        record.Date,
			DateStart:   record.DateStart,
			DateEnd:     record.DateEnd,
			DateConfirm: record.DateConfirm,
		}
	}
	return responses
}
