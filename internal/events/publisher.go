package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"github.com/nvquang/product-api/internal/config"
	"github.com/nvquang/product-api/internal/models"
)

const (
	PatternProductCreated = "product.created"
	PatternProductUpdated = "product.updated"
	PatternProductDeleted = "product.deleted"
)

// Event is the envelope written to the product events topic.
type Event struct {
	Pattern   string      `json:"pattern"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

type Publisher interface {
	ProductCreated(ctx context.Context, product *models.Product)
	ProductUpdated(ctx context.Context, product *models.Product)
	ProductDeleted(ctx context.Context, id int64)
}

func NewPublisher(lc fx.Lifecycle, conf *config.Config) Publisher {
	if !conf.Kafka.Enabled {
		return &noopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(conf.Kafka.Brokers...),
		Topic:        conf.Kafka.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Close()
		},
	})

	return &kafkaPublisher{writer: writer}
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func (p *kafkaPublisher) ProductCreated(ctx context.Context, product *models.Product) {
	p.publish(ctx, PatternProductCreated, product.ID, product)
}

func (p *kafkaPublisher) ProductUpdated(ctx context.Context, product *models.Product) {
	p.publish(ctx, PatternProductUpdated, product.ID, product)
}

func (p *kafkaPublisher) ProductDeleted(ctx context.Context, id int64) {
	p.publish(ctx, PatternProductDeleted, id, map[string]int64{"id": id})
}

// publish is fire-and-forget: a broker failure must never fail the request
// that triggered the event.
func (p *kafkaPublisher) publish(ctx context.Context, pattern string, key int64, data interface{}) {
	value, err := json.Marshal(Event{
		Pattern:   pattern,
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Errorw(ctx, "failed to marshal product event", "pattern", pattern, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(key, 10)),
		Value: value,
	})
	if err != nil {
		log.Errorw(ctx, "failed to publish product event", "pattern", pattern, "error", err)
	}
}

// noopPublisher is used when Kafka is disabled.
type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (n *noopPublisher) ProductCreated(ctx context.Context, product *models.Product) {}
func (n *noopPublisher) ProductUpdated(ctx context.Context, product *models.Product) {}
func (n *noopPublisher) ProductDeleted(ctx context.Context, id int64)                {}
