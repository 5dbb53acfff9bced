// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"livery/internal/config"
	httptransport "livery/internal/http"
	"livery/internal/infra"
	"livery/internal/logger"
	"livery/internal/maps"
	"livery/internal/modules/catalog"
	"livery/internal/modules/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = appLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	placeSvc, err := maps.NewPlaceService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	catalogStore := catalog.NewStore(dbPool)
	catalogCache := catalog.NewCache(redisClient, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	catalogSvc := catalog.NewService(catalogStore, catalogCache, appLog)

	quoteStore := quote.NewStore(dbPool)
	quoteSvc := quote.NewService(quoteStore, catalogSvc, routeSvc, placeSvc, cfg.Pricing.AirportFee, appLog)

	handler := httptransport.NewRouter(quoteSvc, catalogSvc, appLog)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	appLog.Infof("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
