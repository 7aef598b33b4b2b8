package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/dto"
)

// BondHandler serves government-bond requests.
type BondHandler struct {
	uc MarketUsecase
}

// NewBondHandler creates a BondHandler backed by the given usecase.
func NewBondHandler(uc MarketUsecase) *BondHandler {
	return &BondHandler{uc: uc}
}

// List handles GET /bonds?limit=&offset=.
func (h *BondHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidQuery(c, err)
		return
	}
	limit, offset := q.page()

	items, err := h.uc.ListBonds(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewBondInfoResponses(items)})
}

// GetByCountry handles GET /bonds/:country.
func (h *BondHandler) GetByCountry(c *gin.Context) {
	country := c.Param("country")

	info, err := h.uc.GetBondByCountry(c.Request.Context(), country)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewBondInfoResponse(info)})
}
