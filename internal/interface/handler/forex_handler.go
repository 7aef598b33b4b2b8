package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/dto"
)

// ForexHandler serves currency-pair rate requests.
type ForexHandler struct {
	uc MarketUsecase
}

// NewForexHandler creates a ForexHandler backed by the given usecase.
func NewForexHandler(uc MarketUsecase) *ForexHandler {
	return &ForexHandler{uc: uc}
}

type forexQuery struct {
	Base  string `form:"base" binding:"required"`
	Quote string `form:"quote" binding:"required"`
}

// GetRate handles GET /forex?base=&quote=.
func (h *ForexHandler) GetRate(c *gin.Context) {
	var q forexQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidQuery(c, err)
		return
	}

	rate, err := h.uc.GetForexRate(c.Request.Context(), q.Base, q.Quote)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewForexRateResponse(rate)})
}
