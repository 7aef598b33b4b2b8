package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/dto"
)

// ETFHandler serves ETF catalog and holdings requests.
type ETFHandler struct {
	uc MarketUsecase
}

// NewETFHandler creates an ETFHandler backed by the given usecase.
func NewETFHandler(uc MarketUsecase) *ETFHandler {
	return &ETFHandler{uc: uc}
}

// List handles GET /etfs?limit=&offset=.
func (h *ETFHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidQuery(c, err)
		return
	}
	limit, offset := q.page()

	items, err := h.uc.ListETFs(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewETFListingResponses(items)})
}

// GetHoldings handles GET /etfs/:ticker/holdings?from=&to=.
func (h *ETFHandler) GetHoldings(c *gin.Context) {
	ticker := c.Param("ticker")

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

	details, err := h.uc.GetETFHoldings(c.Request.Context(), ticker, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewETFHoldingDetailsResponse(details)})
}
