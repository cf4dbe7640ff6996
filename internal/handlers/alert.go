// internal/handlers/alert.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/i18n"
	"github.com/comparisonmarket/cm-backend/internal/services"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

type AlertHandler struct {
	alertService *services.AlertService
}

func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// alertUser parses the authenticated user id set by the session middleware.
func alertUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		return uuid.Nil, false
	}
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}

// GET /v1/user/alerts
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := alertUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	alerts, err := h.alertService.List(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"total":  len(alerts),
	})
}

// POST /v1/user/alerts
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := alertUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "")
		return
	}

	alert, err := h.alertService.Create(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, "")
		case errors.Is(err, catalog.ErrProductNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(lang, i18n.KeyAlertCreated),
		"alert":   alert,
	})
}

// DELETE /v1/user/alerts/:id
func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := alertUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyAlertNotFound))
		return
	}

	if err := h.alertService.Delete(userID, alertID); err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyAlertNotFound))
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(lang, i18n.KeyAlertDeleted),
	})
}
