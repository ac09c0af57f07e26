package service

import (
	"context"
	"time"

	"condo-portal/internal/pkg"

	"go.uber.org/zap"
)

// ListInvalidator tells UI consumers that a community's list view is stale.
// It publishes one event per successful mutation, keyed by community so
// consumers can partition per tenant. Delivery is best-effort: a mutation
// never fails because the signal did.
type ListInvalidator struct {
	producer *pkg.KafkaProducer
	log      *zap.Logger
}

func NewListInvalidator(producer *pkg.KafkaProducer, log *zap.Logger) *ListInvalidator {
	return &ListInvalidator{producer: producer, log: log}
}

func (i *ListInvalidator) Notify(ctx context.Context, entity string, communityID uint64) {
	if i == nil || i.producer == nil {
		return
	}
	ev := pkg.InvalidationEvent{
		Entity:      entity,
		CommunityID: communityID,
		At:          time.Now().UTC(),
	}
	if err := i.producer.PublishInvalidation(ctx, ev); err != nil {
		i.log.Warn("invalidation signal failed",
			zap.String("entity", entity),
			zap.Uint64("community_id", communityID),
			zap.Error(err))
	}
}
