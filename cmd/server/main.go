package main

import (
	"market_backend/internal/app/di"
	"market_backend/internal/app/router"
	"market_backend/internal/config"
	"market_backend/internal/interface/handler"
	"market_backend/internal/logger"
	"market_backend/internal/usecase"
)

func main() {
	// Configuration; refuses to start without the provider credential.
	cfg := config.MustLoad()

	logger.Init(cfg.Env)
	defer logger.Sync()

	// Provider adapter
	market := di.NewMarket(cfg)

	// Usecase
	marketUC := usecase.NewMarketUsecase(market)

	// Handlers
	h := router.Handlers{
		Stock:     handler.NewStockHandler(marketUC),
		Index:     handler.NewIndexHandler(marketUC),
		Forex:     handler.NewForexHandler(marketUC),
		Commodity: handler.NewCommodityHandler(marketUC),
		Company:   handler.NewCompanyHandler(marketUC),
		Bond:      handler.NewBondHandler(marketUC),
		ETF:       handler.NewETFHandler(marketUC),
	}

	r := router.NewRouter(h)

	logger.Get().Infow("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Get().Fatalw("server exited", "error", err)
	}
}
