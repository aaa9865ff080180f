// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package milestone

import (
	"github.com/campusbridge/campusbridge/internal/application"
	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event/consumer"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/job"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/web"
	"github.com/campusbridge/campusbridge/internal/milestone/ioc"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache, idGen *snowflake.EventIDGenerator, cfg Config, appm *application.Module, dm *dispute.Module) (*Module, error) {
	milestoneDAO := InitTablesOnce(db)
	milestoneRepository := repository.NewRepository(milestoneDAO)
	wechatConfig := ioc.InitWechatConfig()
	client := ioc.InitWechatClient(wechatConfig)
	nativeApiService := ioc.InitNativeApiService(client)
	transferBatchApiService := ioc.InitTransferApiService(client)
	wechatProvider := ioc.InitWechatProvider(nativeApiService, transferBatchApiService, wechatConfig)
	v := appm.Svc
	v2 := dm.Svc
	statusChangedEventProducer, err := event.NewStatusChangedEventProducer(q)
	if err != nil {
		return nil, err
	}
	portfolioFactEventProducer, err := event.NewPortfolioFactEventProducer(q)
	if err != nil {
		return nil, err
	}
	generator := sequencenumber.NewGenerator()
	v3 := service.NewService(milestoneRepository, wechatProvider, v, v2, statusChangedEventProducer, portfolioFactEventProducer, idGen, generator, cfg)
	v4 := web.NewHandler(v3, ec)
	v5 := initSyncPendingCapturesJob(v3)
	custodyConfirmationConsumer := initCustodyConfirmationConsumer(v3, q)
	module := &Module{
		Svc:                    v3,
		Hdl:                    v4,
		SyncPendingCapturesJob: v5,
		Consumer:               custodyConfirmationConsumer,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.MilestoneDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewMilestoneGORMDAO(db)
}

func initSyncPendingCapturesJob(svc service.Service) *job.SyncPendingCapturesJob {
	return job.NewSyncPendingCapturesJob(svc, 100)
}

func initCustodyConfirmationConsumer(svc service.Service, q mq.MQ) *consumer.CustodyConfirmationConsumer {
	c, err := consumer.NewCustodyConfirmationConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}
