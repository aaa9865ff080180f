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

package application

import (
	"sync"

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
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache,
	idGen *snowflake.EventIDGenerator, weights domain.ScoreWeights) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitTablesOnce,
		cache.NewApplicationECache,
		repository.NewRepository,
		event.NewStatusChangedEventProducer,
		sequencenumber.NewGenerator,
		service.NewService,
		web.NewHandler,
		initOfferExpiryJob,
	)
	return new(Module), nil
}

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
