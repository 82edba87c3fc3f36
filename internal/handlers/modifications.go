package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// ModificationHandler handles the change-order review workflow.
type ModificationHandler struct {
	Store *store.Store
}

// NewModificationHandler creates a new ModificationHandler.
func NewModificationHandler(s *store.Store) *ModificationHandler {
	return &ModificationHandler{Store: s}
}

// modificationView decorates a request with its derived progress for display.
type modificationView struct {
	models.ModificationRequest
	Progress int `json:"progress"`
}

func viewOf(r models.ModificationRequest) modificationView {
	return modificationView{ModificationRequest: r, Progress: r.Progress()}
}

func viewsOf(rs []models.ModificationRequest) []modificationView {
	out := make([]modificationView, 0, len(rs))
	for _, r := range rs {
		out = append(out, viewOf(r))
	}
	return out
}

// SubmitModificationRequest represents the request body for a new change order.
type SubmitModificationRequest struct {
	AppointmentID string `json:"appointmentId" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	RequestType   string `json:"requestType" binding:"required,oneof=addition change"`
	Priority      string `json:"priority" binding:"required,oneof=low medium high urgent"`
}

// SubmitModification creates a pending request against one of the customer's
// appointments.
func (h *ModificationHandler) SubmitModification(c *gin.Context) {
	var req SubmitModificationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	customerID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	customerName, _ := middleware.GetUserNameFromContext(c)

	appointment, err := h.Store.Appointments.Get(req.AppointmentID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	if appointment.CustomerID != customerID {
		utils.Forbidden(c, "Customers can only request modifications to their own appointments.")
		return
	}

	priority, _ := models.ParsePriority(req.Priority)
	request, err := h.Store.Modifications.Submit(store.SubmitParams{
		CustomerID:      customerID,
		CustomerName:    customerName,
		AppointmentID:   appointment.ID,
		ServiceType:     appointment.ServiceType,
		AppointmentDate: appointment.Date,
		Title:           req.Title,
		Description:     req.Description,
		RequestType:     models.RequestType(req.RequestType),
		Priority:        priority,
	})
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Created(c, "Modification request submitted successfully", viewOf(request))
}

// GetModificationsForUser lists requests: customers see their own, admins and
// employees see all, optionally narrowed by ?status=.
func (h *ModificationHandler) GetModificationsForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var requests []models.ModificationRequest
	if userRole == models.RoleCustomer {
		requests = h.Store.Modifications.ListByCustomer(userID)
	} else {
		requests = h.Store.Modifications.ListFiltered(c.Query("status"))
	}

	utils.Success(c, "Modification requests fetched successfully", viewsOf(requests))
}

// GetModificationCounts returns the derived review stats.
func (h *ModificationHandler) GetModificationCounts(c *gin.Context) {
	utils.Success(c, "Modification request stats", h.Store.Modifications.Counts())
}

// ReviewModificationRequest represents the admin's verdict payload.
type ReviewModificationRequest struct {
	Decision      string           `json:"decision" binding:"required,oneof=approve reject"`
	Response      string           `json:"response"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost"`
}

// ReviewModification settles a pending request. Rejection requires a reason;
// a request that already left pending cannot be reviewed again.
func (h *ModificationHandler) ReviewModification(c *gin.Context) {
	var req ReviewModificationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	reviewer, _ := middleware.GetUserNameFromContext(c)
	request, err := h.Store.Modifications.Review(
		c.Param("id"),
		store.ReviewDecision(req.Decision),
		req.Response,
		req.EstimatedCost,
		reviewer,
	)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Modification request reviewed", viewOf(request))
}

// StartModification moves an approved request into execution, assigning the
// acting employee.
func (h *ModificationHandler) StartModification(c *gin.Context) {
	userName, _ := middleware.GetUserNameFromContext(c)

	request, err := h.Store.Modifications.Start(c.Param("id"), userName)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Modification request started", viewOf(request))
}

// AddCheckpointRequest represents a new timeline milestone.
type AddCheckpointRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
}

// AddCheckpoint appends a milestone to a reviewed request's timeline.
func (h *ModificationHandler) AddCheckpoint(c *gin.Context) {
	var req AddCheckpointRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	request, err := h.Store.Modifications.AddCheckpoint(c.Param("id"), req.Title, req.Description, req.Date)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Checkpoint added", viewOf(request))
}

// CompleteCheckpoint marks a milestone done; finishing the last one completes
// the request.
func (h *ModificationHandler) CompleteCheckpoint(c *gin.Context) {
	request, err := h.Store.Modifications.CompleteCheckpoint(c.Param("id"), c.Param("checkpointId"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Checkpoint completed", viewOf(request))
}
