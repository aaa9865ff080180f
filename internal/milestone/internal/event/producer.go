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

type PortfolioFactEventProducer interface {
	Produce(ctx context.Context, evt PortfolioFactEvent) error
}

func NewPortfolioFactEventProducer(q mq.MQ) (PortfolioFactEventProducer, error) {
	return mqx.NewGeneralProducer[PortfolioFactEvent](q, PortfolioFactsTopic)
}
