// internal/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comparisonmarket/cm-backend/internal/i18n"
	"github.com/comparisonmarket/cm-backend/internal/services"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products := h.productService.ListProducts()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyProductNotFound))
		return
	}

	c.JSON(http.StatusOK, product)
}

// GET /v1/deals
func (h *ProductHandler) GetDeals(c *gin.Context) {
	deals := h.productService.GetDeals()
	c.JSON(http.StatusOK, gin.H{
		"products": deals,
		"total":    len(deals),
	})
}

// GET /v1/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.productService.GetCategories(),
	})
}
