package handlers

import (
	"net/http"

	"hotelbooking/config"
	"hotelbooking/middleware"
	"hotelbooking/models"
	"hotelbooking/services/user"
	"hotelbooking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, login and the user endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

func setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AuthCookieName, token, maxAge, "/", "", config.IsProduction(), true)
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.RespondError(c, utils.BindingError(err), "")
		return
	}

	resp, err := h.UserService.RegisterUser(c.Request.Context(), reg)
	if err != nil {
		utils.RespondError(c, err, "Something went wrong")
		return
	}

	setAuthCookie(c, resp.Token, int(utils.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, resp)
}

// AuthenticateUserHandler handles POST /api/auth/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.BindingError(err), "")
		return
	}

	resp, err := h.UserService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err, "Something went wrong")
		return
	}

	setAuthCookie(c, resp.Token, int(utils.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, resp)
}

// ValidateTokenHandler handles GET /api/auth/validate-token.
func (h *UserHandler) ValidateTokenHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID})
}

// LogoutHandler handles POST /api/auth/logout. It always clears the cookie.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if token := middleware.TokenFromRequest(c); token != "" {
		if err := h.UserService.RevokeToken(c.Request.Context(), token); err != nil {
			utils.GetLogger().Warn("Failed to revoke session token", zap.Error(err))
		}
	}
	setAuthCookie(c, "", -1)
	c.Status(http.StatusOK)
}

// GetCurrentUserHandler handles GET /api/users/me.
func (h *UserHandler) GetCurrentUserHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.UserService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetAllUsersHandler handles GET /api/users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Something went wrong")
		return
	}
	c.JSON(http.StatusOK, users)
}
