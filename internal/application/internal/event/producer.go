package event

import (
	"context"

	"github.com/campusbridge/campusbridge/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type StatusChangedEventProducer interface {
	Produce(ctx context.Context, evt StatusChangedEvent) error
}

func NewStatusChangedEventProducer(q mq.MQ) (StatusChangedEventProducer, error) {
	return mqx.NewGeneralProducer[StatusChangedEvent](q, StatusEventsTopic)
}
