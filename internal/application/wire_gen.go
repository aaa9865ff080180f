// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package application

import (
	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
	"github.com/campusbridge/campusbridge/internal/application/internal/event"
	"github.com/campusbridge/campusbridge/internal/application/internal/job"
	"github.com/campusbridge/campusbridge/internal/application/internal/repository"
	"github.com/campusbridge/campusbridge/internal/application/internal/repository/cache"
	"github.com/campusbridge/campusbridge/internal/application/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/application/internal/service"
	"github.com/campusbridge/campusbridge/internal/application/internal/web"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache, idGen *snowflake.EventIDGenerator, weights domain.ScoreWeights) (*Module, error) {
	applicationDAO := InitTablesOnce(db)
	applicationCache := cache.NewApplicationECache(ec)
	applicationRepository := repository.NewRepository(applicationDAO, applicationCache)
	statusChangedEventProducer, err := event.NewStatusChangedEventProducer(q)
	if err != nil {
		return nil, err
	}
	generator := sequencenumber.NewGenerator()
	v := service.NewService(applicationRepository, weights, statusChangedEventProducer, idGen, generator)
	v2 := web.NewHandler(v)
	v3 := initOfferExpiryJob(v)
	module := &Module{
		Svc:            v,
		Hdl:            v2,
		OfferExpiryJob: v3,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewApplicationGORMDAO(db)
}

func initOfferExpiryJob(svc service.Service) *job.OfferExpiryJob {
	return job.NewOfferExpiryJob(svc, 100)
}
