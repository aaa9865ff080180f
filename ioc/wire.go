//go:build wireinject

package ioc

import (
	"github.com/campusbridge/campusbridge/internal/application"
	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/milestone"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitMQ, InitCache, InitRedis, InitEventIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitScoreWeights,
		InitMilestoneConfig,
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "Hdl", "OfferExpiryJob"),
		dispute.InitModule,
		wire.FieldsOf(new(*dispute.Module), "Hdl"),
		milestone.InitModule,
		wire.FieldsOf(new(*milestone.Module), "Hdl", "SyncPendingCapturesJob"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initConsumers,
	)
	return new(App), nil
}

func initConsumers(m *milestone.Module) []Consumer {
	return []Consumer{m.Consumer}
}
