// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/event"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/service"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/web"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/campusbridge/campusbridge/internal/test/ioc"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(idGen *snowflake.EventIDGenerator) (*dispute.Module, error) {
	v := testioc.InitDB()
	daoDisputeDAO := InitDAO(v)
	disputeRepository := repository.NewRepository(daoDisputeDAO)
	mq := testioc.InitMQ()
	disputeEventProducer, err := event.NewDisputeEventProducer(mq)
	if err != nil {
		return nil, err
	}
	generator := sequencenumber.NewGenerator()
	v2 := service.NewService(disputeRepository, disputeEventProducer, idGen, generator)
	v3 := web.NewHandler(v2)
	module := &dispute.Module{
		Svc: v2,
		Hdl: v3,
	}
	return module, nil
}

// wire.go:

var (
	once       = &sync.Once{}
	disputeDAO dao.DisputeDAO
)

func InitDAO(db *egorm.Component) dao.DisputeDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		disputeDAO = dao.NewDisputeGORMDAO(db)
	})
	return disputeDAO
}
