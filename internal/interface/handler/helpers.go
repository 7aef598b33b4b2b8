package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"market_backend/internal/apperrors"
	"market_backend/internal/logger"
)

// listQuery carries pagination parameters. Limit is a pointer so that an
// explicit limit=0 is rejected by validation instead of silently falling
// back to the default.
type listQuery struct {
	Limit  *int `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset int  `form:"offset" binding:"omitempty,min=0"`
}

// page returns the bound values, zero meaning "use the façade default".
func (q listQuery) page() (limit, offset int) {
	if q.Limit != nil {
		limit = *q.Limit
	}
	return limit, q.Offset
}

// dateRangeQuery carries optional from/to date bounds.
type dateRangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

const queryDateLayout = "2006-01-02"

// bounds parses both dates; a missing value stays the zero time.
func (q dateRangeQuery) bounds() (from, to time.Time, err error) {
	if q.From != "" {
		if from, err = time.Parse(queryDateLayout, q.From); err != nil {
			return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date, expected YYYY-MM-DD")
		}
	}
	if q.To != "" {
		if to, err = time.Parse(queryDateLayout, q.To); err != nil {
			return from, to, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date, expected YYYY-MM-DD")
		}
	}
	return from, to, nil
}

// respondWithError writes the JSON error response for err. Not-found maps
// to the flat {"detail": ...} body the API documents; other AppErrors keep
// their code and status; anything else is logged and becomes a generic 500.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.ErrNotFound.Code {
			c.JSON(appErr.StatusCode, gin.H{"detail": appErr.Message})
			return
		}
		if appErr.Internal != nil {
			logger.Get().Errorw("upstream error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternal.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternal.Code,
			"message": apperrors.ErrInternal.Message,
		},
	})
}

// respondInvalidQuery maps a gin binding failure to the 400 shape.
func respondInvalidQuery(c *gin.Context, err error) {
	respondWithError(c, apperrors.Wrap(
		apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid query parameters"), err))
}
