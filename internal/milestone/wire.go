// Copyright 2024 campusbridge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package milestone

import (
	"sync"

	"github.com/campusbridge/campusbridge/internal/application"
	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event/consumer"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/job"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/web"
	"github.com/campusbridge/campusbridge/internal/milestone/ioc"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	ec ecache.Cache,
	idGen *snowflake.EventIDGenerator,
	cfg Config,
	appm *application.Module,
	dm *dispute.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.FieldsOf(new(*dispute.Module), "Svc"),
		InitTablesOnce,
		ioc.InitWechatConfig,
		ioc.InitWechatClient,
		ioc.InitNativeApiService,
		ioc.InitTransferApiService,
		ioc.InitWechatProvider,
		wire.Bind(new(custody.Provider), new(*custody.WechatProvider)),
		repository.NewRepository,
		event.NewStatusChangedEventProducer,
		event.NewPortfolioFactEventProducer,
		sequencenumber.NewGenerator,
		service.NewService,
		web.NewHandler,
		initSyncPendingCapturesJob,
		initCustodyConfirmationConsumer,
	)
	return new(Module), nil
}

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
