package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/tubepulse/config"
	"github.com/spacesedan/tubepulse/internal/logging"
	"github.com/spacesedan/tubepulse/internal/models"
)

const initRetryDelay = 5 * time.Second

// Tails the analysis-results topic and logs every event the API publishes.
// Handy for checking what a running instance produces before a real
// downstream consumer exists.
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		slog.Info("[Events] Shutting down...")
		cancel()
	}()

	consumer := newConsumer(ctx)
	if consumer == nil {
		return
	}
	defer consumer.Close()

	topic := cfg.Events.Topic
	if err := consumer.SubscribeTopics([]string{topic}, nil); err != nil {
		slog.Error("[Events] Failed to subscribe",
			slog.String("topic", topic),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Events] Tailing analysis events", slog.String("topic", topic))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		// Bounded read keeps the loop responsive to cancellation.
		msg, err := consumer.ReadMessage(time.Second)
		if err != nil {
			if kafkaErr, ok := err.(kafka.Error); ok {
				if kafkaErr.Code() == kafka.ErrTimedOut {
					continue
				}
				if kafkaErr.Code() == kafka.ErrAllBrokersDown {
					slog.Error("[Events] All Kafka brokers are down. Aborting")
					return
				}
			}
			slog.Warn("[Events] Failed to read message",
				slog.String("error", err.Error()))
			continue
		}

		logEvent(msg.Value)

		if _, err := consumer.CommitMessage(msg); err != nil {
			slog.Warn("[Events] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}

// logEvent decodes and prints one event. Undecodable payloads are logged and
// skipped; the caller still commits so a bad message cannot wedge the group.
func logEvent(value []byte) {
	var event models.AnalysisCompletedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		slog.Warn("[Events] Skipping undecodable event",
			slog.String("error", err.Error()))
		return
	}

	slog.Info("[Events] Analysis completed",
		slog.String("event_id", event.EventID),
		slog.String("video_id", event.VideoID),
		slog.Int("comments", event.CommentCount),
		slog.Int("positive", event.Positive),
		slog.Int("neutral", event.Neutral),
		slog.Int("negative", event.Negative),
		slog.String("at", event.Timestamp))
}

// newConsumer retries until the broker accepts the connection, mirroring the
// producer init loop on the API side. Returns nil once ctx is cancelled.
func newConsumer(ctx context.Context) *kafka.Consumer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		broker = "localhost:29092"
	}
	groupID := os.Getenv("KAFKA_CONSUMER_GROUP_ID")
	if groupID == "" {
		groupID = "tubepulse-events"
	}

	for {
		consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
			"bootstrap.servers":  broker,
			"group.id":           groupID,
			"auto.offset.reset":  "earliest",
			"enable.auto.commit": false,
		})
		if err == nil {
			slog.Info("[Events] Kafka consumer initialized",
				slog.String("broker", broker),
				slog.String("group_id", groupID))
			return consumer
		}

		slog.Warn("[Events] Kafka init failed, retrying...",
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(initRetryDelay):
		}
	}
}
