package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"nextu/pkg/logger"

	"github.com/IBM/sarama"
)

type KafkaConsumerConfig struct {
	Brokers       []string
	Topic         string
	ConsumerGroup string
	Workers       int
	RetryBackoff  time.Duration
	MaxRetryDelay time.Duration
}

func DefaultKafkaConsumerConfig(brokers []string, topic, group string) *KafkaConsumerConfig {
	return &KafkaConsumerConfig{
		Brokers:       brokers,
		Topic:         topic,
		ConsumerGroup: group,
		Workers:       4,
		RetryBackoff:  2 * time.Second,
		MaxRetryDelay: 30 * time.Second,
	}
}

type NotificationConsumer interface {
	Start(ctx context.Context) error
	Close() error
}

type kafkaConsumer struct {
	group    sarama.ConsumerGroup
	config   *KafkaConsumerConfig
	email    EmailService
	producer NotificationProducer
	log      *logger.Logger
	wg       sync.WaitGroup
}

func NewKafkaConsumer(config *KafkaConsumerConfig, email EmailService, producer NotificationProducer, log *logger.Logger) (NotificationConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(config.Brokers, config.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		group:    group,
		config:   config,
		email:    email,
		producer: producer,
		log:      log,
	}, nil
}

// Start runs the consume loop until ctx is cancelled. Blocking; callers
// usually run it in a goroutine.
func (kc *kafkaConsumer) Start(ctx context.Context) error {
	handler := &consumerGroupHandler{
		email:         kc.email,
		producer:      kc.producer,
		log:           kc.log,
		retryBackoff:  kc.config.RetryBackoff,
		maxRetryDelay: kc.config.MaxRetryDelay,
	}

	kc.wg.Add(1)
	go func() {
		defer kc.wg.Done()
		for err := range kc.group.Errors() {
			if kc.log != nil {
				kc.log.Error("consumer group error", "error", err)
			}
		}
	}()

	for {
		if err := kc.group.Consume(ctx, []string{kc.config.Topic}, handler); err != nil {
			if kc.log != nil {
				kc.log.Error("consume session ended", "error", err)
			}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (kc *kafkaConsumer) Close() error {
	err := kc.group.Close()
	kc.wg.Wait()
	return err
}

type consumerGroupHandler struct {
	email         EmailService
	producer      NotificationProducer
	log           *logger.Logger
	retryBackoff  time.Duration
	maxRetryDelay time.Duration
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	var notification Notification
	if err := json.Unmarshal(message.Value, &notification); err != nil {
		if h.log != nil {
			h.log.Error("failed to decode notification message",
				"topic", message.Topic,
				"offset", message.Offset,
				"error", err,
			)
		}
		return
	}

	notification.Status = NotificationStatusSending
	if err := h.deliverWithRetry(ctx, &notification); err != nil {
		notification.MarkFailed(err)
		if h.producer != nil {
			if dlqErr := h.producer.PublishToDeadLetter(&notification, err.Error()); dlqErr != nil && h.log != nil {
				h.log.Error("failed to publish to dead letter topic",
					"notification_id", notification.ID.String(),
					"error", dlqErr,
				)
			}
		}
		return
	}

	notification.MarkSent()
}

// deliverWithRetry retries transient delivery failures with exponential
// backoff up to MaxRetries before giving up.
func (h *consumerGroupHandler) deliverWithRetry(ctx context.Context, notification *Notification) error {
	var lastErr error
	for attempt := 0; attempt <= notification.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(h.retryBackoff) * math.Pow(2, float64(attempt-1)))
			if delay > h.maxRetryDelay {
				delay = h.maxRetryDelay
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := h.email.Send(notification); err != nil {
			lastErr = err
			notification.RetryCount = attempt
			if h.log != nil {
				h.log.Warn("notification delivery attempt failed",
					"notification_id", notification.ID.String(),
					"attempt", attempt+1,
					"error", err,
				)
			}
			continue
		}
		return nil
	}
	return fmt.Errorf("delivery failed after %d attempts: %w", notification.MaxRetries+1, lastErr)
}
