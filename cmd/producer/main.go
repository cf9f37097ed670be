package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/reviewpulse/reviewpulse/config"
	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/ingestion"
	"github.com/reviewpulse/reviewpulse/internal/logging"
	"github.com/reviewpulse/reviewpulse/internal/monitoring"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	clients.InitValkey()
	defer clients.CloseValkey()

	if err := db.InitDB(ctx); err != nil {
		slog.Error("Failed to connect to business registry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.CloseDB()

	fetchInterval, err := strconv.Atoi(os.Getenv("REVIEW_FETCH_INTERVAL"))
	if err != nil {
		fetchInterval = 1800 // Default to 30 minutes (in seconds)
	}

	fetchTicker := time.NewTicker(time.Duration(fetchInterval) * time.Second)
	defer fetchTicker.Stop()

	feedHealthy := &atomic.Bool{}
	feedHealthy.Store(true)
	go monitoring.MonitorFeedHealth(ctx, feedHealthy)

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	// Fetch once on startup, then on every tick
	ingestion.FetchReviewsForProfiles(ctx)

	for {
		select {
		case <-fetchTicker.C:
			if !feedHealthy.Load() {
				slog.Warn("Skipping fetch cycle, review feed is unhealthy")
				continue
			}
			go ingestion.FetchReviewsForProfiles(ctx)

		case <-stopChan:
			slog.Info("Shutting down producer gracefully...")
			cancel()
			return
		}
	}
}
