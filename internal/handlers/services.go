package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// ServiceHandler manages the service catalog.
type ServiceHandler struct {
	Store *store.Store
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(s *store.Store) *ServiceHandler {
	return &ServiceHandler{Store: s}
}

// ServiceRequest is the payload for creating or updating a catalog entry.
type ServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    string          `json:"duration"`
	Category    string          `json:"category" binding:"required"`
}

func (r ServiceRequest) params() store.ServiceParams {
	return store.ServiceParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Category:    models.ServiceCategory(r.Category),
	}
}

// GetServices lists the catalog. Customers only see active entries; admins
// and employees see everything.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var services []models.Service
	if userRole == models.RoleCustomer {
		services = h.Store.Services.ListActive()
	} else {
		services = h.Store.Services.List()
	}
	utils.Success(c, "Services fetched successfully", services)
}

// GetServiceByID returns a single catalog entry.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	service, err := h.Store.Services.Get(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Service fetched successfully", service)
}

// CreateService adds a catalog entry. Admin only.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	service, err := h.Store.Services.Create(req.params())
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Created(c, "Service created successfully", service)
}

// UpdateService edits a catalog entry. Admin only.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req ServiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	service, err := h.Store.Services.Update(c.Param("id"), req.params())
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Service updated successfully", service)
}

// ToggleService flips a catalog entry between active and inactive.
func (h *ServiceHandler) ToggleService(c *gin.Context) {
	service, err := h.Store.Services.ToggleActive(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Service availability updated", service)
}

// DeleteService removes a catalog entry. Admin only.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.Store.Services.Delete(c.Param("id")); err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Service deleted successfully", nil)
}
