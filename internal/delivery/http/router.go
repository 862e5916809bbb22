package http

import (
	"net/http"

	"campus-clinic-scheduler/internal/delivery/http/handler"
	"campus-clinic-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	availabilityHandler   *handler.AvailabilityHandler
	appointmentHandler    *handler.AppointmentHandler
	redistributionHandler *handler.RedistributionHandler
	settingHandler        *handler.ScheduleSettingHandler
	limitHandler          *handler.WeeklyLimitHandler
	reminderHandler       *handler.ReminderHandler
	auditLogHandler       *handler.AuditLogHandler
	campusHandler         *handler.CampusHandler
	doctorHandler         *handler.DoctorHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	redistributionHandler *handler.RedistributionHandler,
	settingHandler *handler.ScheduleSettingHandler,
	limitHandler *handler.WeeklyLimitHandler,
	reminderHandler *handler.ReminderHandler,
	auditLogHandler *handler.AuditLogHandler,
	campusHandler *handler.CampusHandler,
	doctorHandler *handler.DoctorHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		availabilityHandler:   availabilityHandler,
		appointmentHandler:    appointmentHandler,
		redistributionHandler: redistributionHandler,
		settingHandler:        settingHandler,
		limitHandler:          limitHandler,
		reminderHandler:       reminderHandler,
		auditLogHandler:       auditLogHandler,
		campusHandler:         campusHandler,
		doctorHandler:         doctorHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public availability routes: students browse slots without an account
	api.HandleFunc("/slots", r.availabilityHandler.GetSlotGrid).Methods(http.MethodGet)
	api.HandleFunc("/slots/availability", r.availabilityHandler.CheckSlot).Methods(http.MethodGet)
	api.HandleFunc("/campuses", r.campusHandler.GetAllCampuses).Methods(http.MethodGet)
	api.HandleFunc("/campuses/{id}", r.campusHandler.GetCampus).Methods(http.MethodGet)

	// Staff routes (any clinic role)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/board", r.availabilityHandler.GetWeekBoard).Methods(http.MethodGet)
	staff.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	staff.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPost)

	staff.HandleFunc("/schedule/redistribute", r.redistributionHandler.Redistribute).Methods(http.MethodPost)
	staff.HandleFunc("/schedule/holidays", r.redistributionHandler.MarkHoliday).Methods(http.MethodPost)

	staff.HandleFunc("/reminders", r.reminderHandler.SendReminders).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Operating-hours settings (admin)
	admin.HandleFunc("/settings", r.settingHandler.CreateSetting).Methods(http.MethodPost)
	admin.HandleFunc("/settings", r.settingHandler.GetAllSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{id}", r.settingHandler.GetSetting).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{id}", r.settingHandler.UpdateSetting).Methods(http.MethodPut)
	admin.HandleFunc("/settings/{id}", r.settingHandler.DeleteSetting).Methods(http.MethodDelete)

	// Appointment ceilings (admin)
	admin.HandleFunc("/limits", r.limitHandler.GetAllLimits).Methods(http.MethodGet)
	admin.HandleFunc("/limits/{type}", r.limitHandler.GetLimit).Methods(http.MethodGet)
	admin.HandleFunc("/limits/{type}", r.limitHandler.UpdateLimit).Methods(http.MethodPut)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
