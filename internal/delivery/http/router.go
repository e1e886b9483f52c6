package http

import (
	"net/http"

	"proclinic-server/internal/delivery/http/handler"
	"proclinic-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	agendaHandler        *handler.AgendaHandler
	eventHandler         *handler.EventHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	patientHandler       *handler.PatientHandler
	planHandler          *handler.PlanHandler
	clinicHandler        *handler.ClinicHandler
	documentHandler      *handler.DocumentHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	agendaHandler *handler.AgendaHandler,
	eventHandler *handler.EventHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	patientHandler *handler.PatientHandler,
	planHandler *handler.PlanHandler,
	clinicHandler *handler.ClinicHandler,
	documentHandler *handler.DocumentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		agendaHandler:        agendaHandler,
		eventHandler:         eventHandler,
		medicalRecordHandler: medicalRecordHandler,
		patientHandler:       patientHandler,
		planHandler:          planHandler,
		clinicHandler:        clinicHandler,
		documentHandler:      documentHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

// Setup wires the route table. The flat names mirror the frontend's API
// calls one-to-one.
func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Protected routes
	api := r.router.NewRoute().Subrouter()
	api.Use(r.authMiddleware.Authenticate)

	// Users
	api.HandleFunc("/createUser", r.authHandler.CreateUser).Methods(http.MethodPut)
	api.HandleFunc("/getDoctors", r.authHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/getUsers", r.authHandler.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/updateUser", r.authHandler.UpdateUser).Methods(http.MethodPost)
	api.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Combined screen loads
	api.HandleFunc("/getDashboard", r.agendaHandler.GetDashboard).Methods(http.MethodGet)
	api.HandleFunc("/getAgenda", r.agendaHandler.GetAgenda).Methods(http.MethodGet)
	api.HandleFunc("/updateEditEvent", r.agendaHandler.UpdateEditEvent).Methods(http.MethodPost)
	api.HandleFunc("/getAtend", r.agendaHandler.GetAtend).Methods(http.MethodGet)
	api.HandleFunc("/getReports", r.agendaHandler.GetReports).Methods(http.MethodGet)

	// Events
	api.HandleFunc("/getEvents", r.eventHandler.GetEvents).Methods(http.MethodGet)
	api.HandleFunc("/getWaitEvents", r.eventHandler.GetWaitEvents).Methods(http.MethodGet)
	api.HandleFunc("/getDoctorEvents", r.eventHandler.GetDoctorEvents).Methods(http.MethodGet)
	api.HandleFunc("/getHistoryEvents", r.eventHandler.GetHistoryEvents).Methods(http.MethodGet)
	api.HandleFunc("/createEvent", r.eventHandler.CreateEvent).Methods(http.MethodPut)
	api.HandleFunc("/updateEvent", r.eventHandler.UpdateEvent).Methods(http.MethodPost)
	api.HandleFunc("/dropEvent", r.eventHandler.DropEvent).Methods(http.MethodPost)
	api.HandleFunc("/changeConfirmed", r.eventHandler.ChangeConfirmed).Methods(http.MethodPost)
	api.HandleFunc("/changeStatus", r.eventHandler.ChangeStatus).Methods(http.MethodPost)
	api.HandleFunc("/deleteEvent", r.eventHandler.DeleteEvent).Methods(http.MethodDelete)

	// Medical records
	api.HandleFunc("/createMedicalRecord", r.medicalRecordHandler.CreateMedicalRecord).Methods(http.MethodPut)
	api.HandleFunc("/getMedicalRecord", r.medicalRecordHandler.GetMedicalRecord).Methods(http.MethodGet)
	api.HandleFunc("/initAtend", r.medicalRecordHandler.InitAtend).Methods(http.MethodPost)

	// Plans
	api.HandleFunc("/createPlan", r.planHandler.CreatePlan).Methods(http.MethodPut)
	api.HandleFunc("/editPlan", r.planHandler.EditPlan).Methods(http.MethodPost)
	api.HandleFunc("/getPlans", r.planHandler.GetPlans).Methods(http.MethodGet)
	api.HandleFunc("/editTussPlan", r.planHandler.EditTussPlan).Methods(http.MethodPost)

	// Clinic
	api.HandleFunc("/getClinic", r.clinicHandler.GetClinic).Methods(http.MethodGet)
	api.HandleFunc("/updateClinic", r.clinicHandler.UpdateClinic).Methods(http.MethodPost)

	// Patients
	api.HandleFunc("/createPatient", r.patientHandler.CreatePatient).Methods(http.MethodPut)
	api.HandleFunc("/getPatient", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/searchPatients", r.patientHandler.SearchPatients).Methods(http.MethodGet)
	api.HandleFunc("/searchPatientsList", r.patientHandler.SearchPatientsList).Methods(http.MethodPost)
	api.HandleFunc("/updatePatient", r.patientHandler.UpdatePatient).Methods(http.MethodPost)

	// Documents
	api.HandleFunc("/getDocuments", r.documentHandler.GetDocuments).Methods(http.MethodGet)
	api.HandleFunc("/createDocument", r.documentHandler.CreateDocument).Methods(http.MethodPut)
	api.HandleFunc("/updateDocument", r.documentHandler.UpdateDocument).Methods(http.MethodPost)
	api.HandleFunc("/deleteDocument", r.documentHandler.DeleteDocument).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
