package handlers

import (
	"github.com/gin-gonic/gin"

	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// WorkItemHandler covers the employee time-tracking board.
type WorkItemHandler struct {
	Store *store.Store
}

// NewWorkItemHandler creates a new WorkItemHandler.
func NewWorkItemHandler(s *store.Store) *WorkItemHandler {
	return &WorkItemHandler{Store: s}
}

// GetWorkItems lists the signed-in employee's assignments.
func (h *WorkItemHandler) GetWorkItems(c *gin.Context) {
	userName, exists := middleware.GetUserNameFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	utils.Success(c, "Work items fetched successfully", h.Store.WorkItems.ListByEmployee(userName))
}

// ownedItem loads a work item and checks the caller is its assignee. Admins
// pass regardless.
func (h *WorkItemHandler) ownedItem(c *gin.Context) (models.WorkItem, bool) {
	item, err := h.Store.WorkItems.Get(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return models.WorkItem{}, false
	}
	userName, _ := middleware.GetUserNameFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && item.AssignedEmployee != userName {
		utils.Forbidden(c, "You can only track time on your own assignments.")
		return models.WorkItem{}, false
	}
	return item, true
}

// StartTimer begins timing a work item. Any other timer the employee has
// running is paused first.
func (h *WorkItemHandler) StartTimer(c *gin.Context) {
	item, ok := h.ownedItem(c)
	if !ok {
		return
	}
	item, err := h.Store.WorkItems.StartTimer(item.ID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Timer started", item)
}

// PauseTimer stops a running timer, banking its elapsed time.
func (h *WorkItemHandler) PauseTimer(c *gin.Context) {
	item, ok := h.ownedItem(c)
	if !ok {
		return
	}
	item, err := h.Store.WorkItems.PauseTimer(item.ID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Timer paused", item)
}

// LogTimeRequest carries a manual time entry.
type LogTimeRequest struct {
	Hours float64 `json:"hours" binding:"required"`
}

// LogTime records hours worked outside the timer.
func (h *WorkItemHandler) LogTime(c *gin.Context) {
	var req LogTimeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	item, ok := h.ownedItem(c)
	if !ok {
		return
	}
	item, err := h.Store.WorkItems.LogTime(item.ID, req.Hours)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Time logged successfully", item)
}

// UpdateWorkStatusRequest carries a status change with an optional manual
// progress override and a note for the audit trail.
type UpdateWorkStatusRequest struct {
	Status   string `json:"status" binding:"required,oneof=pending in-progress completed"`
	Progress int    `json:"progress"`
	Note     string `json:"note"`
}

// UpdateStatus moves a work item through its lifecycle.
func (h *WorkItemHandler) UpdateStatus(c *gin.Context) {
	var req UpdateWorkStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	item, ok := h.ownedItem(c)
	if !ok {
		return
	}
	userName, _ := middleware.GetUserNameFromContext(c)
	item, err := h.Store.WorkItems.UpdateStatus(item.ID, models.WorkItemStatus(req.Status), req.Progress, req.Note, userName)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Work item updated successfully", item)
}
