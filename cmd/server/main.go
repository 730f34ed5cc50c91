package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"harker-site-backend/pkg/business"
	"harker-site-backend/pkg/chat"
	"harker-site-backend/pkg/classifier"
	"harker-site-backend/pkg/config"
	"harker-site-backend/pkg/email"
	"harker-site-backend/pkg/forwarder"
	"harker-site-backend/pkg/metrics"
	"harker-site-backend/pkg/ratelimit"
	redisClient "harker-site-backend/pkg/redis"
	"harker-site-backend/pkg/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	logger.SetFormatter(&logrus.JSONFormatter{})

	logger.WithField("instance_id", cfg.InstanceID).Info("Starting inquiry service")

	// Initialize metrics
	m := metrics.NewMetrics()

	info := business.Info{
		Name:      cfg.BusinessName,
		OwnerName: cfg.OwnerName,
		Phone:     cfg.OwnerPhone,
		Email:     cfg.OwnerEmail,
	}

	// Rate-limit store: Redis-backed when configured so replicas share
	// windows, otherwise process-local.
	var limiter ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.RedisURL != "" {
		rc, err := redisClient.NewClient(cfg.RedisURL, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer rc.Close()
		limiter = ratelimit.NewRedisStore(rc.GetRedisClient())
	}

	sender := email.NewResendSender(email.ResendConfig{
		APIKey:  cfg.ResendAPIKey,
		From:    cfg.EmailFrom,
		To:      cfg.EmailTo,
		ReplyTo: cfg.EmailReplyTo,
	}, logger)

	fwd := forwarder.New(info,
		&forwarder.LogSMSNotifier{Info: info, Logger: logger},
		&forwarder.LogEmailNotifier{Info: info, Logger: logger},
		logger, m, cfg.NotifierTimeout())

	engine := chat.NewEngine(classifier.New(info), forwarder.NewGate(cfg.ForwardCooldown()), fwd, info, logger, m)

	srv := server.NewHTTPServer(cfg, engine, sender, limiter, logger, m)

	go func() {
		logger.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Received shutdown signal")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Error during server shutdown")
	}

	logger.Info("Shutdown complete")
}
