// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comparisonmarket/cm-backend/internal/config"
	"github.com/comparisonmarket/cm-backend/internal/i18n"
	"github.com/comparisonmarket/cm-backend/internal/services"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

// resolveSession reads the signed session cookie and looks up the session row.
// Any failure along the way (no cookie, bad signature, unknown or expired
// token) resolves to no session; the middleware decides whether that aborts.
func resolveSession(c *gin.Context, cfg *config.Config, authService *services.AuthService) bool {
	cookieValue, err := c.Cookie(cfg.Session.CookieName)
	if err != nil || cookieValue == "" {
		return false
	}

	token, err := utils.ParseSessionToken(cookieValue)
	if err != nil {
		return false
	}

	session := authService.GetSession(token)
	if session == nil {
		return false
	}

	c.Set("session_token", token)
	c.Set("user_id", session.UserID.String())
	c.Set("user_email", session.User.Email)
	c.Set("user_name", session.User.Name)
	return true
}

// SessionRequired aborts with 401 when no valid session cookie is present.
func SessionRequired(cfg *config.Config, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolveSession(c, cfg, authService) {
			lang := utils.GetLangFromContext(c)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": i18n.T(lang, i18n.KeyAuthRequired),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalSession populates user context when a valid session cookie is
// present but never aborts.
func OptionalSession(cfg *config.Config, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolveSession(c, cfg, authService)
		c.Next()
	}
}
