// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/campusbridge/campusbridge/internal/application"
	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/milestone"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	mq := InitMQ()
	cache := InitCache(cmdable)
	eventIDGenerator := InitEventIDGenerator()
	scoreWeights := InitScoreWeights()
	module, err := application.InitModule(v, mq, cache, eventIDGenerator, scoreWeights)
	if err != nil {
		return nil, err
	}
	v2 := module.Hdl
	v3 := InitMilestoneConfig()
	disputeModule, err := dispute.InitModule(v, mq, eventIDGenerator)
	if err != nil {
		return nil, err
	}
	milestoneModule, err := milestone.InitModule(v, mq, cache, eventIDGenerator, v3, module, disputeModule)
	if err != nil {
		return nil, err
	}
	v4 := milestoneModule.Hdl
	v5 := disputeModule.Hdl
	component := initGinxServer(provider, v2, v4, v5)
	v6 := module.OfferExpiryJob
	v7 := milestoneModule.SyncPendingCapturesJob
	v8 := initCronJobs(v6, v7)
	v9 := initConsumers(milestoneModule)
	app := &App{
		Web:       component,
		Crons:     v8,
		Consumers: v9,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitMQ, InitCache, InitRedis, InitEventIDGenerator)

func initConsumers(m *milestone.Module) []Consumer {
	return []Consumer{m.Consumer}
}
