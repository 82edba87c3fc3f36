package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"servicehub-server/internal/config"
	"servicehub-server/internal/middleware"
	"servicehub-server/internal/models"
	"servicehub-server/internal/notifier"
	"servicehub-server/internal/session"
	"servicehub-server/internal/store"
	"servicehub-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Store    *store.Store
	Sessions *session.Store
	Notifier *notifier.Notifier
	Cfg      *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *store.Store, sessions *session.Store, n *notifier.Notifier, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: s, Sessions: sessions, Notifier: n, Cfg: cfg}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	User         models.UserSanitized `json:"user"`
}

// Login checks credentials against the account table, persists the session
// record and starts the notification generator for the user. The error message
// is the same generic one for every failure mode.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Store.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate tokens: "+err.Error())
		return
	}

	if err := h.Sessions.Save(session.Record{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}); err != nil {
		utils.InternalServerError(c, "Failed to persist session: "+err.Error())
		return
	}

	h.Notifier.Start(context.Background(), user.ID)

	utils.Success(c, "Login successful", LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitize(),
	})
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse represents the response body for successful token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken issues a new token pair from a valid refresh token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	claims, err := utils.ValidateToken(req.RefreshToken, h.Cfg.JWTRefreshSecret)
	if err != nil {
		utils.Unauthorized(c, "Invalid refresh token: "+err.Error())
		return
	}

	user, err := h.Store.Users.Get(claims.UserID)
	if err != nil {
		utils.Unauthorized(c, "User associated with token no longer exists")
		return
	}
	if user.Status != models.UserActive {
		utils.Unauthorized(c, "Account is inactive")
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate tokens: "+err.Error())
		return
	}

	utils.Success(c, "Access token refreshed successfully", RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout clears the persisted session record plus cached view data and stops
// the user's notification generator.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	h.Notifier.Stop(userID)
	if err := h.Sessions.Clear(); err != nil {
		utils.InternalServerError(c, "Failed to clear session: "+err.Error())
		return
	}

	utils.Success(c, "Logged out successfully", nil)
}

// GetSession returns the persisted identity record, the way the dashboard
// restores its session on startup. No record means no session.
func (h *AuthHandler) GetSession(c *gin.Context) {
	rec, ok := h.Sessions.Load()
	if !ok {
		utils.NotFound(c, "No active session")
		return
	}
	utils.Success(c, "Session restored", rec)
}

// GetProfile returns the authenticated user's sanitized account.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.Store.Users.Get(userID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.Success(c, "Profile fetched successfully", user.Sanitize())
}
