package main

import (
	"context"
	"csrfdemo/handlers"
	"csrfdemo/simulator"
	"csrfdemo/utils"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// Load environment variables
	envErr := utils.LoadEnvFile()

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil && !cfg.IsProduction() {
		logger.Info("no .env file found, continuing")
	}
	logger.Infow("environment", "env", cfg.Env, "mode", cfg.DefaultMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(
		simulator.WithMode(cfg.Mode()),
		simulator.WithInitialBalance(cfg.InitialBalance),
		simulator.WithLogger(logger.Named("simulator")),
	)

	// Optional cross-process state feed
	if cfg.RedisURL != "" {
		redisClient, err := utils.OpenRedisPool(cfg.RedisURL)
		if err != nil {
			logger.Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()

		publisher := utils.NewStatePublisher(redisClient, cfg.RedisChannel, logger.Named("publisher"))
		go publisher.Run(ctx)
		defer sim.Subscribe(publisher.Observe)()
		logger.Infow("publishing state", "channel", cfg.RedisChannel)
	}

	hub := handlers.NewHub(ctx, sim, logger.Named("ws"))
	go hub.Start()
	defer hub.Stop()
	defer sim.Subscribe(hub.Observe)()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handlers.NewRouter(handlers.New(sim, logger.Named("http")), hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnw("server shutdown", "error", err)
		}
	}()

	// Start the server
	logger.Infow("starting server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("server failed", "error", err)
		return
	}
	logger.Info("server stopped")
}
