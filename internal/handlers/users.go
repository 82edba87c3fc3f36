package handlers

import (
	"github.com/gin-gonic/gin"

	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// UserHandler is the admin account-management surface.
type UserHandler struct {
	Store *store.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{Store: s}
}

// GetUsers lists all accounts, newest first.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users := h.Store.Users.List()
	sanitized := make([]models.UserSanitized, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitize())
	}
	utils.Success(c, "Users fetched successfully", sanitized)
}

// CreateUserRequest carries a new account.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin employee customer"`
}

// CreateUser adds an account. Admin only.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	role, _ := models.ParseRole(req.Role)

	user, err := h.Store.Users.Create(req.Name, req.Email, req.Password, role)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Created(c, "User created successfully", user.Sanitize())
}

// UpdateUserRequest carries account edits.
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin employee customer"`
}

// UpdateUser edits an account. Admin only.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	role, _ := models.ParseRole(req.Role)

	user, err := h.Store.Users.Update(c.Param("id"), req.Name, req.Email, role)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "User updated successfully", user.Sanitize())
}

// ToggleUserStatus flips an account between active and inactive. Inactive
// accounts cannot sign in.
func (h *UserHandler) ToggleUserStatus(c *gin.Context) {
	user, err := h.Store.Users.ToggleStatus(c.Param("id"))
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "User status updated", user.Sanitize())
}

// DeleteUser removes an account. An admin cannot delete themselves.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	id := c.Param("id")
	if id == userID {
		utils.BadRequest(c, "You cannot delete your own account.")
		return
	}

	if err := h.Store.Users.Delete(id); err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "User deleted successfully", nil)
}
