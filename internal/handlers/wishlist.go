// internal/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/i18n"
	"github.com/comparisonmarket/cm-backend/internal/services"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

// demoUserID serves unauthenticated wishlist traffic so the endpoints work
// without an account.
const demoUserID = "user123"

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// wishlistUser resolves list ownership: session user first, then the user-id
// header, then the shared demo user.
func wishlistUser(c *gin.Context) string {
	if userID, ok := utils.GetUserIDFromContext(c); ok {
		return userID
	}
	if headerID := c.GetHeader("user-id"); headerID != "" {
		return headerID
	}
	return demoUserID
}

// GET /v1/user/wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	items := h.wishlistService.List(wishlistUser(c))
	c.JSON(http.StatusOK, gin.H{
		"wishlist": items,
		"total":    len(items),
	})
}

// POST /v1/user/wishlist
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		ProductID int `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductIDRequired))
		return
	}

	item, err := h.wishlistService.Add(wishlistUser(c), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyInWishlist):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyWishlistDuplicate))
		case errors.Is(err, catalog.ErrProductNotFound):
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(lang, i18n.KeyWishlistAdded),
		"item":    item,
	})
}

// DELETE /v1/user/wishlist?productId=
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productID, err := strconv.Atoi(c.Query("productId"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductIDRequired))
		return
	}

	if err := h.wishlistService.Remove(wishlistUser(c), productID); err != nil {
		if errors.Is(err, services.ErrNotInWishlist) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyWishlistNotFound))
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": i18n.T(lang, i18n.KeyWishlistRemoved),
	})
}
