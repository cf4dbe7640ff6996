// internal/services/alert_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/models"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

type AlertService struct {
	db      *gorm.DB
	catalog catalog.Repository
}

type CreateAlertRequest struct {
	ProductID   int     `json:"productId" validate:"required,min=1"`
	Type        string  `json:"type" validate:"omitempty,oneof=price_drop restock"`
	TargetPrice float64 `json:"targetPrice" validate:"required,gt=0"`
}

// AlertView is a PriceAlert joined with the live catalog price at read time.
type AlertView struct {
	models.PriceAlert
	CurrentPrice float64 `json:"currentPrice"`
	Triggered    bool    `json:"triggered"`
}

func NewAlertService(db *gorm.DB, cat catalog.Repository) *AlertService {
	return &AlertService{
		db:      db,
		catalog: cat,
	}
}

func (s *AlertService) Create(userID uuid.UUID, req *CreateAlertRequest) (*models.PriceAlert, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, ok := s.catalog.CurrentPrice(req.ProductID); !ok {
		return nil, catalog.ErrProductNotFound
	}

	alertType := models.AlertTypePriceDrop
	if req.Type != "" {
		alertType = models.AlertType(req.Type)
	}

	alert := &models.PriceAlert{
		UserID:      userID,
		ProductID:   req.ProductID,
		Type:        alertType,
		TargetPrice: req.TargetPrice,
		Active:      true,
	}

	if err := s.db.Create(alert).Error; err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return alert, nil
}

// List returns the user's alerts with the live price and the triggered flag
// computed on read.
func (s *AlertService) List(userID uuid.UUID) ([]AlertView, error) {
	var alerts []models.PriceAlert
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	views := make([]AlertView, 0, len(alerts))
	for _, alert := range alerts {
		view := AlertView{PriceAlert: alert}
		if price, ok := s.catalog.CurrentPrice(alert.ProductID); ok {
			view.CurrentPrice = price
			view.Triggered = alert.Active && price <= alert.TargetPrice
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *AlertService) Delete(userID, alertID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", alertID, userID).Delete(&models.PriceAlert{})
	if result.Error != nil {
		return fmt.Errorf("database error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (s *AlertService) Deactivate(userID, alertID uuid.UUID) error {
	var alert models.PriceAlert
	if err := s.db.Where("id = ? AND user_id = ?", alertID, userID).First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlertNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.db.Model(&alert).Update("active", false).Error
}
