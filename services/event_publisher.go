package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

const defaultBackgroundTimeout = 15 * time.Second

// Domain event names. The topic is <prefix>.<event>.
const (
	EventOrderCreated               = "order.created"
	EventOrderStatusChanged         = "order.status_changed"
	EventOrdersBulkUpdated          = "order.bulk_updated"
	EventOrdersDeleted              = "order.deleted"
	EventProductStockLow            = "product.stock_low"
	EventProductDeleted             = "product.deleted"
	EventStaffStatusChanged         = "staff.status_changed"
	EventNotificationCreated        = "notification.created"
	EventCustomizationStatusChanged = "customization.status_changed"
)

// Event is the envelope written to the broker.
type Event struct {
	Name       string      `json:"name"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// EventPublisher ships domain events to whoever listens downstream.
type EventPublisher interface {
	Publish(ctx context.Context, name, key string, payload interface{}) error
	Close() error
}

// ════════════════════════════════════════════════════════════
// Kafka
// ════════════════════════════════════════════════════════════

type KafkaPublisher struct {
	writer      *kafka.Writer
	topicPrefix string
}

func NewKafkaPublisher(brokers []string, topicPrefix string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            5,
		BatchTimeout:           50 * time.Millisecond,
		WriteBackoffMin:        100 * time.Millisecond,
		WriteBackoffMax:        time.Second,
	}
	log.Printf("✅ Kafka publisher ready (brokers=%v)", brokers)
	return &KafkaPublisher{writer: writer, topicPrefix: topicPrefix}
}

func (p *KafkaPublisher) topic(name string) string {
	if p.topicPrefix == "" {
		return name
	}
	return p.topicPrefix + "." + name
}

func (p *KafkaPublisher) Publish(ctx context.Context, name, key string, payload interface{}) error {
	data, err := json.Marshal(Event{Name: name, Key: key, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	msg := kafka.Message{
		Topic: p.topic(name),
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(name)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", name, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, name, key string, payload interface{}) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var (
	publisherMu sync.RWMutex
	publisher   EventPublisher = NoopPublisher{}
)

// InitEventPublisher picks Kafka when brokers are configured.
func InitEventPublisher(brokers []string, topicPrefix string) {
	if len(brokers) == 0 {
		log.Println("⚠️  KAFKA_BROKERS not set, domain events are discarded")
		return
	}
	SetEventPublisher(NewKafkaPublisher(brokers, topicPrefix))
}

func SetEventPublisher(p EventPublisher) {
	publisherMu.Lock()
	defer publisherMu.Unlock()
	if p == nil {
		p = NoopPublisher{}
	}
	publisher = p
}

func GetEventPublisher() EventPublisher {
	publisherMu.RLock()
	defer publisherMu.RUnlock()
	return publisher
}

// PublishAsync sends the event from a goroutine; failures are only logged.
func PublishAsync(name, key string, payload interface{}) {
	p := GetEventPublisher()
	if _, noop := p.(NoopPublisher); noop {
		return
	}
	runBackground(func(ctx context.Context) {
		if err := p.Publish(ctx, name, key, payload); err != nil {
			log.Printf("[events.publish] ⚠️ %v", err)
		}
	})
}
