package notifications

import (
	"fmt"
	"time"

	"nextu/pkg/logger"

	"github.com/IBM/sarama"
)

type KafkaProducerConfig struct {
	Brokers         []string
	Topic           string
	DeadLetterTopic string
	RetryMax        int
	RequiredAcks    sarama.RequiredAcks
	Compression     sarama.CompressionCodec
	FlushFrequency  time.Duration
	BatchSize       int
}

func DefaultKafkaProducerConfig(brokers []string, topic string) *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:         brokers,
		Topic:           topic,
		DeadLetterTopic: topic + ".dlq",
		RetryMax:        3,
		RequiredAcks:    sarama.WaitForAll,
		Compression:     sarama.CompressionSnappy,
		FlushFrequency:  100 * time.Millisecond,
		BatchSize:       100,
	}
}

type NotificationProducer interface {
	Publish(notification *Notification) error
	PublishToDeadLetter(notification *Notification, reason string) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
	log      *logger.Logger
}

func NewKafkaProducer(config *KafkaProducerConfig, log *logger.Logger) (NotificationProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Compression = config.Compression
	saramaConfig.Producer.Flush.Frequency = config.FlushFrequency
	saramaConfig.Producer.Flush.Messages = config.BatchSize
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		config:   config,
		log:      log,
	}, nil
}

func (kp *kafkaProducer) Publish(notification *Notification) error {
	notification.Status = NotificationStatusQueued
	notification.UpdatedAt = time.Now()

	payload, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: kp.config.Topic,
		Key:   sarama.StringEncoder(notification.GetPartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification_type"), Value: []byte(notification.Type)},
			{Key: []byte("priority"), Value: []byte(notification.Priority)},
			{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
		},
		Timestamp: time.Now(),
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		notification.MarkFailed(err)
		return fmt.Errorf("failed to publish notification %s: %w", notification.ID, err)
	}

	if kp.log != nil {
		kp.log.Debug("notification published",
			"notification_id", notification.ID.String(),
			"type", string(notification.Type),
			"partition", partition,
			"offset", offset,
		)
	}
	return nil
}

func (kp *kafkaProducer) PublishToDeadLetter(notification *Notification, reason string) error {
	payload, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize dead letter notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: kp.config.DeadLetterTopic,
		Key:   sarama.StringEncoder(notification.GetPartitionKey()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
			{Key: []byte("failure_reason"), Value: []byte(reason)},
			{Key: []byte("retry_count"), Value: []byte(fmt.Sprintf("%d", notification.RetryCount))},
		},
		Timestamp: time.Now(),
	}

	if _, _, err := kp.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish to dead letter topic: %w", err)
	}

	if kp.log != nil {
		kp.log.Warn("notification moved to dead letter topic",
			"notification_id", notification.ID.String(),
			"reason", reason,
		)
	}
	return nil
}

func (kp *kafkaProducer) Close() error {
	return kp.producer.Close()
}
