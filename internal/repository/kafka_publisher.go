package repository

import (
	"context"

	"github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/models"
	domrepo "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/internal/domain/repository"
	pkgkafka "github.com/1mposer/OUVC-valuation-of-crypto-and-real-estate-assets/pkg/kafka"
)

// KafkaPublisher emits analysis events to a Kafka topic, keyed by asset so
// per-asset ordering survives partitioning.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e *models.AnalysisEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(e.AssetKey), e)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher discards events; used when the events sink is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *models.AnalysisEvent) error { return nil }
func (NopPublisher) Close() error                                         { return nil }

var (
	_ domrepo.ResultPublisher = (*KafkaPublisher)(nil)
	_ domrepo.ResultPublisher = NopPublisher{}
)
