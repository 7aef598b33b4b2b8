package router

import (
	"github.com/gin-gonic/gin"

	"market_backend/internal/interface/handler"
	"market_backend/internal/middleware"
)

// Handlers bundles the per-resource handlers the router wires up.
type Handlers struct {
	Stock     *handler.StockHandler
	Index     *handler.IndexHandler
	Forex     *handler.ForexHandler
	Commodity *handler.CommodityHandler
	Company   *handler.CompanyHandler
	Bond      *handler.BondHandler
	ETF       *handler.ETFHandler
}

// NewRouter builds the route table. All market-data routes live under the
// /api/v1 prefix; no route requires authentication.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/stocks/:symbol", h.Stock.GetQuote)
		v1.GET("/stocks/:symbol/historical", h.Stock.GetHistory)

		v1.GET("/indices", h.Index.List)
		v1.GET("/indices/:symbol", h.Index.GetQuote)

		v1.GET("/forex", h.Forex.GetRate)

		v1.GET("/commodities/:name", h.Commodity.GetPrice)
		v1.GET("/commodities/:name/historical", h.Commodity.GetHistory)

		v1.GET("/companies/:ticker", h.Company.GetProfile)
		v1.GET("/companies/:ticker/ratings", h.Company.GetRatings)

		v1.GET("/bonds", h.Bond.List)
		v1.GET("/bonds/:country", h.Bond.GetByCountry)

		v1.GET("/etfs", h.ETF.List)
		v1.GET("/etfs/:ticker/holdings", h.ETF.GetHoldings)
	}

	return r
}
