package event

import (
	"context"

	"github.com/campusbridge/campusbridge/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type DisputeEventProducer interface {
	Produce(ctx context.Context, evt DisputeEvent) error
}

func NewDisputeEventProducer(q mq.MQ) (DisputeEventProducer, error) {
	return mqx.NewGeneralProducer[DisputeEvent](q, DisputeEventsTopic)
}
