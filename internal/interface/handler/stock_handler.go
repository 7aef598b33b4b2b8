package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/dto"
)

// StockHandler serves stock quote and historical-price requests.
type StockHandler struct {
	uc MarketUsecase
}

// NewStockHandler creates a StockHandler backed by the given usecase.
func NewStockHandler(uc MarketUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetQuote handles GET /stocks/:symbol.
func (h *StockHandler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := h.uc.GetStockQuote(c.Request.Context(), symbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewQuoteResponse(quote)})
}

// GetHistory handles GET /stocks/:symbol/historical?from=&to=.
func (h *StockHandler) GetHistory(c *gin.Context) {
	symbol := c.Param("symbol")

	var q dateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidQuery(c, err)
		return
	}
	from, to, err := q.bounds()
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.uc.GetStockHistory(c.Request.Context(), symbol, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewHistoricalSeriesResponse(series)})
}
