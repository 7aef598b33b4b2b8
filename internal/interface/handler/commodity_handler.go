package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/dto"
)

// CommodityHandler serves commodity snapshot and history requests.
type CommodityHandler struct {
	uc MarketUsecase
}

// NewCommodityHandler creates a CommodityHandler backed by the given usecase.
func NewCommodityHandler(uc MarketUsecase) *CommodityHandler {
	return &CommodityHandler{uc: uc}
}

// GetPrice handles GET /commodities/:name.
func (h *CommodityHandler) GetPrice(c *gin.Context) {
	name := c.Param("name")

	price, err := h.uc.GetCommodityPrice(c.Request.Context(), name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewCommodityPriceResponse(price)})
}

type commodityHistoryQuery struct {
	dateRangeQuery
	Frequency string `form:"frequency" binding:"omitempty,oneof=daily weekly monthly"`
}

// GetHistory handles GET /commodities/:name/historical?from=&to=&frequency=.
func (h *CommodityHandler) GetHistory(c *gin.Context) {
	name := c.Param("name")

	var q commodityHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidQuery(c, err)
		return
	}
	from, to, err := q.bounds()
	if err != nil {
		respondWithError(c, err)
		return
	}

	history, err := h.uc.GetCommodityHistory(c.Request.Context(), name, from, to, q.Frequency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewCommodityHistoryResponse(history)})
}
