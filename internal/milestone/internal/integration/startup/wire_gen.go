// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/campusbridge/campusbridge/internal/application"
	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/milestone"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event/consumer"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/job"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/web"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/campusbridge/campusbridge/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

// InitModule 托管方与相邻模块由测试方传入, 便于打桩
func InitModule(provider custody.Provider, idGen *snowflake.EventIDGenerator, cfg service.Config, appm *application.Module, dm *dispute.Module) (*milestone.Module, error) {
	v := testioc.InitDB()
	daoMilestoneDAO := InitDAO(v)
	milestoneRepository := repository.NewRepository(daoMilestoneDAO)
	v2 := appm.Svc
	v3 := dm.Svc
	mq := testioc.InitMQ()
	statusChangedEventProducer, err := event.NewStatusChangedEventProducer(mq)
	if err != nil {
		return nil, err
	}
	portfolioFactEventProducer, err := event.NewPortfolioFactEventProducer(mq)
	if err != nil {
		return nil, err
	}
	generator := sequencenumber.NewGenerator()
	v4 := service.NewService(milestoneRepository, provider, v2, v3, statusChangedEventProducer, portfolioFactEventProducer, idGen, generator, cfg)
	cache := testioc.InitCache()
	v5 := web.NewHandler(v4, cache)
	v6 := initSyncPendingCapturesJob(v4)
	custodyConfirmationConsumer := initCustodyConfirmationConsumer(v4, mq)
	module := &milestone.Module{
		Svc:                    v4,
		Hdl:                    v5,
		SyncPendingCapturesJob: v6,
		Consumer:               custodyConfirmationConsumer,
	}
	return module, nil
}

// wire.go:

var (
	once         = &sync.Once{}
	milestoneDAO dao.MilestoneDAO
)

func InitDAO(db *egorm.Component) dao.MilestoneDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		milestoneDAO = dao.NewMilestoneGORMDAO(db)
	})
	return milestoneDAO
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
