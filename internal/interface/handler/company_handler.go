package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/dto"
)

// CompanyHandler serves company profile and analyst-ratings requests.
type CompanyHandler struct {
	uc MarketUsecase
}

// NewCompanyHandler creates a CompanyHandler backed by the given usecase.
func NewCompanyHandler(uc MarketUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetProfile handles GET /companies/:ticker.
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	ticker := c.Param("ticker")

	profile, err := h.uc.GetCompanyProfile(c.Request.Context(), ticker)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewCompanyProfileResponse(profile)})
}

type ratingsQuery struct {
	dateRangeQuery
	Rated string `form:"rated"`
}

// GetRatings handles GET /companies/:ticker/ratings?from=&to=&rated=.
func (h *CompanyHandler) GetRatings(c *gin.Context) {
	ticker := c.Param("ticker")

	var q ratingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidQuery(c, err)
		return
	}
	from, to, err := q.bounds()
	if err != nil {
		respondWithError(c, err)
		return
	}

	ratings, err := h.uc.GetCompanyRatings(c.Request.Context(), ticker, from, to, q.Rated)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.NewCompanyRatingsResponse(ratings)})
}
