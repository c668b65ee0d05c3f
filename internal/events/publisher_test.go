package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"

	"github.com/nvquang/product-api/internal/config"
	"github.com/nvquang/product-api/internal/models"
)

func TestNewPublisherDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	conf := &config.Config{}

	p := NewPublisher(lc, conf)

	_, ok := p.(*noopPublisher)
	assert.True(t, ok, "publisher must be a noop when Kafka is disabled")

	// noop calls must be safe without a broker
	p.ProductCreated(context.Background(), &models.Product{ID: 1})
	p.ProductDeleted(context.Background(), 1)
}

func TestNewPublisherEnabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	conf := &config.Config{
		Kafka: config.KafkaConfig{
			Enabled: true,
			Brokers: []string{"localhost:9092"},
			Topic:   "product-events",
		},
	}

	p := NewPublisher(lc, conf)

	kp, ok := p.(*kafkaPublisher)
	assert.True(t, ok)
	assert.Equal(t, "product-events", kp.writer.Topic)
}
