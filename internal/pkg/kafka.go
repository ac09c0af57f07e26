package pkg

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// InvalidationEvent announces that one community's listing of an entity
// ("notices", "meetings", "worries", "residents") is stale and should be
// re-fetched.
type InvalidationEvent struct {
	Entity      string    `json:"entity"`
	CommunityID uint64    `json:"community_id"`
	At          time.Time `json:"at"`
}

// KafkaProducer publishes invalidation events keyed by community id, so one
// tenant's events always land on the same partition and stay ordered.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *KafkaProducer) PublishInvalidation(ctx context.Context, ev InvalidationEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(ev.CommunityID, 10)),
		Value: value,
	})
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
