package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"weddingapi/internal/adapter/repo"
	"weddingapi/internal/http/handlers"
	httpapi "weddingapi/internal/http/httpapi"
	"weddingapi/internal/infra"
	"weddingapi/internal/infra/geoip"
	"weddingapi/internal/metrics"
	"weddingapi/internal/orders"
	"weddingapi/internal/payments/mercadopago"
	"weddingapi/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	gifts := repo.NewGiftRepository(runner)
	orderRepo := repo.NewOrderRepository(runner)
	sales := repo.NewSaleRepository(runner)
	rsvps := repo.NewRSVPRepository(runner)
	photos := repo.NewPhotoRepository(runner)
	stories := repo.NewStoryRepository(runner)
	contents := repo.NewContentRepository(runner)
	backgrounds := repo.NewBackgroundRepository(runner)
	siteConfig := repo.NewSiteConfigRepository(runner)
	users := repo.NewUserRepository(runner)

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare upload storage")
	}

	geoResolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
		geoResolver = nil
	}

	gatewayLogger := infra.Logger(logger)
	gateway, err := mercadopago.NewClient(mercadopago.Options{
		BaseURL: cfg.GatewayBaseURL,
		Source:  gatewayCredentials{config: siteConfig},
		Logger:  &gatewayLogger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build payment gateway client")
	}

	orderService := orders.NewService(orders.Options{
		Gifts:         gifts,
		Orders:        orderRepo,
		Sales:         sales,
		Config:        siteConfig,
		Gateway:       gateway,
		PublicBaseURL: cfg.PublicBaseURL,
		WebhookSecret: cfg.WebhookSecret,
		Logger:        logger,
		Metrics:       metrics.NewOrderMetrics(),
	})

	app := &handlers.App{
		Gifts:       gifts,
		Sales:       sales,
		RSVPs:       rsvps,
		Photos:      photos,
		Stories:     stories,
		Contents:    contents,
		Backgrounds: backgrounds,
		Config:      siteConfig,
		Users:       users,
		Orders:      orderService,
		Files:       files,
		GeoIP:       geoResolver,
		Logger:      logger,
		JWTSecret:   cfg.JWTSecret,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
