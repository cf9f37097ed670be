package main

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/reviewpulse/reviewpulse/config"
	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/consumers"
	"github.com/reviewpulse/reviewpulse/internal/db"
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

	db.InitDynamoDB()

	replyServiceHealthy := &atomic.Bool{}
	searchHealthy := &atomic.Bool{}
	replyServiceHealthy.Store(true)
	searchHealthy.Store(true)

	go monitoring.MonitorReplyServiceHealth(ctx, replyServiceHealthy)
	go monitoring.MonitorSearchHealth(ctx, searchHealthy)

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_RAW_REVIEWS, consumers.StartRawReviewConsumer)
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_ANALYZED_REVIEWS, consumers.WrapConsumer(
		consumers.StartResultsConsumer, searchHealthy).Handler())
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_REPLY_REQUESTS, consumers.WrapConsumer(
		consumers.StartReplyRequestConsumer, replyServiceHealthy).Handler())

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
