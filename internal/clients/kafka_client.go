package clients

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/tubepulse/internal/models"
)

// Kafka producer instance
var producer *kafka.Producer

// InitKafka initializes the producer when KAFKA_BROKER is set. Events are
// optional: without a broker the service simply skips publishing and reports
// enabled=false.
func InitKafka() (bool, error) {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		slog.Info("[KafkaClient] KAFKA_BROKER not set, analysis events disabled")
		return false, nil
	}

	slog.Info("🔄 Connecting to Kafka", slog.String("broker", broker))

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":   broker,
		"security.protocol":   "PLAINTEXT",
		"api.version.request": "true",
	})
	if err != nil {
		return false, err
	}
	producer = p
	slog.Info("✅ Kafka Producer initialized")
	return true, nil
}

func CloseKafka() {
	if producer != nil {
		producer.Flush(5000)
		producer.Close()
		slog.Info("Kafka producer shut down")
	}
}

// PublishAnalysisEvent emits one analysis-completed event, keyed by video ID
// so all events for a video land on the same partition.
func PublishAnalysisEvent(topic string, event models.AnalysisCompletedEvent) error {
	if producer == nil {
		return nil
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.VideoID),
		Value:          jsonData,
	}, nil)
	if err != nil {
		return err
	}

	slog.Info("📨 Published analysis event",
		slog.String("topic", topic),
		slog.String("video_id", event.VideoID),
		slog.Int("comment_count", event.CommentCount))
	return nil
}

// KafkaEventPublisher adapts the package-level producer to the publisher
// interface the analysis service consumes.
type KafkaEventPublisher struct {
	Topic string
}

func (k KafkaEventPublisher) PublishAnalysisCompleted(event models.AnalysisCompletedEvent) error {
	return PublishAnalysisEvent(k.Topic, event)
}
