// internal/handlers/search.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comparisonmarket/cm-backend/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// GET /v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	params := services.SearchParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		SortBy:   c.Query("sortBy"),
	}

	result := h.searchService.Search(c.Request.Context(), params)
	c.JSON(http.StatusOK, result)
}
