// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package dispute

import (
	"github.com/campusbridge/campusbridge/internal/dispute/internal/event"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/service"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/web"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, idGen *snowflake.EventIDGenerator) (*Module, error) {
	disputeDAO := InitTablesOnce(db)
	disputeRepository := repository.NewRepository(disputeDAO)
	disputeEventProducer, err := event.NewDisputeEventProducer(q)
	if err != nil {
		return nil, err
	}
	generator := sequencenumber.NewGenerator()
	v := service.NewService(disputeRepository, disputeEventProducer, idGen, generator)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module, nil
}

// wire.go:

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.DisputeDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewDisputeGORMDAO(db)
}
