package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rubayat-Rafi/MediMart-Server/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const orderTopic = "order-events"

type OrderEvent struct {
	EventID     string             `json:"event_id"`
	Type        string             `json:"type"`
	OrderID     string             `json:"order_id"`
	BuyerEmail  string             `json:"buyer_email"`
	SellerEmail string             `json:"seller_email"`
	TotalPrice  float64            `json:"total_price"`
	Status      domain.OrderStatus `json:"status"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// OrderPublisher emits order lifecycle events for downstream consumers.
type OrderPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
	OrderStatusChanged(ctx context.Context, order *domain.Order) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  orderTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, "order.created", order)
}

func (p *KafkaPublisher) OrderStatusChanged(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, "order.status_changed", order)
}

func (p *KafkaPublisher) publish(ctx context.Context, eventType string, order *domain.Order) error {
	event := OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     order.ID.Hex(),
		BuyerEmail:  order.BuyerEmail,
		SellerEmail: order.SellerEmail,
		TotalPrice:  order.TotalPrice,
		Status:      order.Status,
		OccurredAt:  time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, *domain.Order) error       { return nil }
func (NopPublisher) OrderStatusChanged(context.Context, *domain.Order) error { return nil }
func (NopPublisher) Close() error                                            { return nil }
