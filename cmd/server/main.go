package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-be/internal/checkout"
	"checkout-be/internal/config"
	"checkout-be/internal/db"
	"checkout-be/internal/logger"
	"checkout-be/internal/payment"
	"checkout-be/internal/transport"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	repo := checkout.NewRepository(database)
	capturer := payment.NewGateway(cfg.PaymentAPIKey, cfg.PaymentBaseURL)
	svc := checkout.NewService(repo, capturer)

	handler := transport.NewHandler(svc, database)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      transport.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.L().Info("checkout server listening",
			zap.String("port", cfg.AppPort),
			zap.String("region", cfg.AppRegion),
			zap.String("env", cfg.AppEnv),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	// In-flight checkouts get a grace period; a request cut off after its
	// order persisted is recovered by the client retrying the same cart id.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("shutdown incomplete", zap.Error(err))
	}
	logger.L().Info("server stopped")
}
