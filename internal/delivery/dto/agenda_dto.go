package dto

// Combined payloads for the screens that load several collections at once.

type AgendaResponse struct {
	Events     []AgendaEventResponse `json:"events"`
	WaitEvents []WaitEventResponse   `json:"wait_events"`
	Plans      []PlanResponse        `json:"plans"`
	Doctors    []DoctorResponse      `json:"doctors"`
	Clinic     *ClinicResponse       `json:"clinic"`
}

type DashboardResponse struct {
	Events  []DashboardEventResponse `json:"events"`
	Plans   []PlanResponse           `json:"plans"`
	Doctors []DoctorResponse         `json:"doctors"`
}

type HistoryResponse struct {
	HistoryEvents []HistoryEventResponse `json:"history_events"`
	Doctors       []DoctorResponse       `json:"doctors"`
	Plans         []PlanResponse         `json:"plans"`
}

// MedicalRecords holds either the full or the receptionist projection,
// depending on the caller's role.
type AtendResponse struct {
	Patient        *PatientResponse    `json:"patient"`
	MedicalRecords interface{}         `json:"medical_records"`
	WaitEvents     []WaitEventResponse `json:"wait_events"`
	Doctors        []DoctorResponse    `json:"doctors"`
	Plans          []PlanResponse      `json:"plans"`
}

type ReportsRequest struct {
	Start  string `json:"start" validate:"required"`
	End    string `json:"end" validate:"required"`
	Doctor string `json:"doctor" validate:"required"`
}

type ReportsResponse struct {
	Events []ReportEventResponse `json:"events"`
}
