package handlers

import (
	"github.com/gin-gonic/gin"

	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// AppointmentHandler handles booking and lifecycle requests.
type AppointmentHandler struct {
	Store *store.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s *store.Store) *AppointmentHandler {
	return &AppointmentHandler{Store: s}
}

// BookAppointmentRequest represents the request body for booking.
type BookAppointmentRequest struct {
	ServiceType string `json:"serviceType" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location" binding:"required"`
}

// BookAppointment creates an appointment for the authenticated customer.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	customerID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Store.Appointments.Book(customerID, req.ServiceType, req.Date, req.Time, req.Location)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Created(c, "Appointment booked successfully", appointment)
}

// GetAppointmentsForUser returns appointments scoped by role: customers see
// their own, employees see assigned plus the unassigned pool, admins see all.
func (h *AppointmentHandler) GetAppointmentsForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userName, _ := middleware.GetUserNameFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var appointments []models.Appointment
	switch userRole {
	case models.RoleCustomer:
		appointments = h.Store.Appointments.ListByCustomer(userID)
	case models.RoleEmployee:
		appointments = h.Store.Appointments.ListForEmployee(userName)
	case models.RoleAdmin:
		appointments = h.Store.Appointments.ListAll()
	default:
		utils.Forbidden(c, "User role not permitted to view appointments")
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID returns a single appointment. Accessible by the owning
// customer, the assigned employee, or an admin.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.Store.Appointments.Get(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userName, _ := middleware.GetUserNameFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	isCustomer := userID == appointment.CustomerID
	isEmployee := userRole == models.RoleEmployee &&
		(appointment.AssignedEmployee == userName || appointment.AssignedEmployee == models.UnassignedEmployee)
	if userRole != models.RoleAdmin && !isCustomer && !isEmployee {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// RescheduleAppointmentRequest represents the request body for rescheduling.
type RescheduleAppointmentRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// RescheduleAppointment moves an upcoming appointment. Only the owning
// customer or an admin may reschedule.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	var req RescheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !h.authorizeOwnerOrAdmin(c) {
		return
	}

	appointment, err := h.Store.Appointments.Reschedule(c.Param("id"), req.Date, req.Time, req.Location)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Appointment rescheduled successfully", appointment)
}

// CancelAppointment cancels an upcoming appointment. Only the owning customer
// or an admin may cancel.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	if !h.authorizeOwnerOrAdmin(c) {
		return
	}

	appointment, err := h.Store.Appointments.Cancel(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Appointment cancelled successfully", appointment)
}

// StartAppointment moves an upcoming appointment to in-progress and assigns
// the acting employee.
func (h *AppointmentHandler) StartAppointment(c *gin.Context) {
	userName, _ := middleware.GetUserNameFromContext(c)

	appointment, err := h.Store.Appointments.Start(c.Param("id"), userName)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Appointment started", appointment)
}

// UpdateProgressRequest represents the request body for a progress update.
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

// UpdateProgress advances an in-progress appointment. Reaching 100 completes it.
func (h *AppointmentHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Store.Appointments.AdvanceProgress(c.Param("id"), req.Progress)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Appointment progress updated", appointment)
}

func (h *AppointmentHandler) authorizeOwnerOrAdmin(c *gin.Context) bool {
	appointment, err := h.Store.Appointments.Get(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return false
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && userID != appointment.CustomerID {
		utils.Forbidden(c, "You are not authorized to modify this appointment")
		return false
	}
	return true
}
