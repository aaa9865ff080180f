// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/campusbridge/campusbridge/internal/application"
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
	"github.com/campusbridge/campusbridge/internal/test/ioc"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(idGen *snowflake.EventIDGenerator, weights domain.ScoreWeights) (*application.Module, error) {
	v := testioc.InitDB()
	daoApplicationDAO := InitDAO(v)
	ecacheCache := testioc.InitCache()
	applicationCache := cache.NewApplicationECache(ecacheCache)
	applicationRepository := repository.NewRepository(daoApplicationDAO, applicationCache)
	mq := testioc.InitMQ()
	statusChangedEventProducer, err := event.NewStatusChangedEventProducer(mq)
	if err != nil {
		return nil, err
	}
	generator := sequencenumber.NewGenerator()
	v2 := service.NewService(applicationRepository, weights, statusChangedEventProducer, idGen, generator)
	v3 := web.NewHandler(v2)
	v4 := initOfferExpiryJob(v2)
	module := &application.Module{
		Svc:            v2,
		Hdl:            v3,
		OfferExpiryJob: v4,
	}
	return module, nil
}

// wire.go:

var (
	once           = &sync.Once{}
	applicationDAO dao.ApplicationDAO
)

func InitDAO(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		applicationDAO = dao.NewApplicationGORMDAO(db)
	})
	return applicationDAO
}

func initOfferExpiryJob(svc service.Service) *job.OfferExpiryJob {
	return job.NewOfferExpiryJob(svc, 100)
}
