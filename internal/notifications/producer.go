package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// LayoutEventProducer interface defines the contract for publishing layout
// lifecycle events
type LayoutEventProducer interface {
	PublishLayoutEvent(ctx context.Context, event *LayoutEvent) error
	Close() error
	HealthCheck(ctx context.Context) error
}

// KafkaProducerConfig contains configuration for the Kafka event producer
type KafkaProducerConfig struct {
	Brokers          []string
	LayoutTopic      string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		LayoutTopic:      "layout-events",
		RetryMax:         3,
		TimeoutMs:        10000,             // 10 seconds
		RequiredAcks:     sarama.WaitForAll, // Wait for all in-sync replicas
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB; a large arena document stays well under this
	}
}

// KafkaLayoutEventProducer handles publishing layout events to Kafka
type KafkaLayoutEventProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

// NewKafkaLayoutEventProducer creates a new Kafka layout event producer
func NewKafkaLayoutEventProducer(config *KafkaProducerConfig) (LayoutEventProducer, error) {
	saramaConfig := sarama.NewConfig()

	// Producer configuration
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	// Enable idempotent producer
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps one venue's events on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka layout event producer created successfully")
	return &KafkaLayoutEventProducer{
		producer: producer,
		config:   config,
	}, nil
}

// PublishLayoutEvent publishes a single layout lifecycle event to Kafka
func (p *KafkaLayoutEventProducer) PublishLayoutEvent(ctx context.Context, event *LayoutEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal layout event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.LayoutTopic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   p.createHeaders(event),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send layout event to Kafka: %w", err)
	}

	log.Printf("Layout event published to Kafka - Topic: %s, Partition: %d, Offset: %d, Type: %s, Layout: %s",
		p.config.LayoutTopic, partition, offset, event.Type, event.LayoutID)

	return nil
}

// createHeaders creates Kafka headers for layout events
func (p *KafkaLayoutEventProducer) createHeaders(event *LayoutEvent) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("layout_id"), Value: []byte(event.LayoutID.String())},
		{Key: []byte("venue_id"), Value: []byte(event.VenueID.String())},
		{Key: []byte("producer"), Value: []byte("seatwise-layouts")},
		{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
	}
}

// Close closes the Kafka producer
func (p *KafkaLayoutEventProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		log.Printf("Kafka layout event producer closed")
	}
	return nil
}

// HealthCheck performs a health check on the Kafka producer
func (p *KafkaLayoutEventProducer) HealthCheck(ctx context.Context) error {
	if p.producer == nil {
		return fmt.Errorf("health check failed - producer is nil")
	}
	if p.config.LayoutTopic == "" {
		return fmt.Errorf("health check failed - layout topic not configured")
	}
	return nil
}
