package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/dto"
)

// IndexHandler serves index quote and catalog requests.
type IndexHandler struct {
	uc MarketUsecase
}

// NewIndexHandler creates an IndexHandler backed by the given usecase.
func NewIndexHandler(uc MarketUsecase) *IndexHandler {
	return &IndexHandler{uc: uc}
}

// List handles GET /indices?limit=&offset=. An empty catalog page is a 200
// with an empty list, never a 404.
func (h *IndexHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidQuery(c, err)
		return
	}
	limit, offset := q.page()

	items, err := h.uc.ListIndices(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewIndexListingResponses(items)})
}

// GetQuote handles GET /indices/:symbol.
func (h *IndexHandler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := h.uc.GetIndexQuote(c.Request.Context(), symbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewQuoteResponse(quote)})
}
