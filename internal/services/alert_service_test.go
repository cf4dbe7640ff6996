// internal/services/alert_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/models"
)

func TestCreateAlert(t *testing.T) {
	svc := NewAlertService(newTestDB(t), smallCatalog(100))
	userID := uuid.New()

	alert, err := svc.Create(userID, &CreateAlertRequest{ProductID: 1, TargetPrice: 90})
	require.NoError(t, err)

	assert.Equal(t, userID, alert.UserID)
	assert.Equal(t, 1, alert.ProductID)
	assert.Equal(t, models.AlertTypePriceDrop, alert.Type)
	assert.Equal(t, 90.0, alert.TargetPrice)
	assert.True(t, alert.Active)
}

func TestCreateAlertValidation(t *testing.T) {
	svc := NewAlertService(newTestDB(t), smallCatalog(100))

	_, err := svc.Create(uuid.New(), &CreateAlertRequest{ProductID: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(uuid.New(), &CreateAlertRequest{ProductID: 1, TargetPrice: 90, Type: "bogus"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateAlertUnknownProduct(t *testing.T) {
	svc := NewAlertService(newTestDB(t), smallCatalog(100))

	_, err := svc.Create(uuid.New(), &CreateAlertRequest{ProductID: 999, TargetPrice: 90})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestListAlertsComputesTriggered(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	// catalog price 100: target 90 not yet reached, target 120 already is
	svc := NewAlertService(db, smallCatalog(100))
	_, err := svc.Create(userID, &CreateAlertRequest{ProductID: 1, TargetPrice: 90})
	require.NoError(t, err)
	_, err = svc.Create(userID, &CreateAlertRequest{ProductID: 1, TargetPrice: 120})
	require.NoError(t, err)

	views, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byTarget := map[float64]AlertView{}
	for _, v := range views {
		byTarget[v.TargetPrice] = v
	}
	assert.False(t, byTarget[90].Triggered)
	assert.True(t, byTarget[120].Triggered)
	assert.Equal(t, 100.0, byTarget[90].CurrentPrice)

	// price falls to 85: both alerts trigger on the next read
	svc = NewAlertService(db, smallCatalog(85))
	views, err = svc.List(userID)
	require.NoError(t, err)
	for _, v := range views {
		assert.True(t, v.Triggered)
		assert.Equal(t, 85.0, v.CurrentPrice)
	}
}

func TestListAlertsScopedToUser(t *testing.T) {
	svc := NewAlertService(newTestDB(t), smallCatalog(100))
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Create(alice, &CreateAlertRequest{ProductID: 1, TargetPrice: 90})
	require.NoError(t, err)

	views, err := svc.List(bob)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDeleteAlert(t *testing.T) {
	svc := NewAlertService(newTestDB(t), smallCatalog(100))
	userID := uuid.New()

	alert, err := svc.Create(userID, &CreateAlertRequest{ProductID: 1, TargetPrice: 90})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(userID, alert.ID))

	views, err := svc.List(userID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDeleteAlertNotFound(t *testing.T) {
	svc := NewAlertService(newTestDB(t), smallCatalog(100))
	userID := uuid.New()

	assert.ErrorIs(t, svc.Delete(userID, uuid.New()), ErrAlertNotFound)

	// another user's alert is invisible
	alert, err := svc.Create(userID, &CreateAlertRequest{ProductID: 1, TargetPrice: 90})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete(uuid.New(), alert.ID), ErrAlertNotFound)
}

func TestDeactivateAlert(t *testing.T) {
	svc := NewAlertService(newTestDB(t), smallCatalog(80))
	userID := uuid.New()

	alert, err := svc.Create(userID, &CreateAlertRequest{ProductID: 1, TargetPrice: 90})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(userID, alert.ID))

	// inactive alerts never report triggered
	views, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Active)
	assert.False(t, views[0].Triggered)
}
