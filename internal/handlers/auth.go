// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/comparisonmarket/cm-backend/internal/config"
	"github.com/comparisonmarket/cm-backend/internal/i18n"
	"github.com/comparisonmarket/cm-backend/internal/services"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// setSessionCookie wraps the opaque token in a signed JWT and sets it as the
// httpOnly session cookie on the response.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	signed, err := utils.SignSessionToken(token, ttl)
	if err != nil {
		return err
	}

	c.SetCookie(h.cfg.Session.CookieName, signed, int(ttl.Seconds()), "/", "", h.cfg.Session.CookieSecure, true)
	return nil
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", h.cfg.Session.CookieSecure, true)
}

// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthEmailPasswordReq))
		return
	}

	authResponse, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthEmailPasswordReq))
		case errors.Is(err, services.ErrEmailInUse):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthEmailInUse))
		default:
			logrus.WithError(err).Error("Registration failed")
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyAuthRegisterFailed))
		}
		return
	}

	if err := h.setSessionCookie(c, authResponse.SessionToken, authResponse.ExpiresAt); err != nil {
		logrus.WithError(err).Error("Failed to sign session cookie")
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    authResponse.User.ID,
		"email": authResponse.User.Email,
		"name":  authResponse.User.Name,
	})
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthEmailPasswordReq))
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthEmailPasswordReq))
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		default:
			logrus.WithError(err).Error("Login failed")
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyAuthLoginFailed))
		}
		return
	}

	if err := h.setSessionCookie(c, authResponse.SessionToken, authResponse.ExpiresAt); err != nil {
		logrus.WithError(err).Error("Failed to sign session cookie")
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    authResponse.User.ID,
			"email": authResponse.User.Email,
			"name":  authResponse.User.Name,
		},
	})
}

// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthNotAuthenticated))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    userID,
			"email": c.GetString("user_email"),
			"name":  c.GetString("user_name"),
		},
	})
}

// POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if token := c.GetString("session_token"); token != "" {
		h.authService.DestroySession(token)
	}
	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess),
	})
}
