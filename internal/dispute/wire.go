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

package dispute

import (
	"sync"

	"github.com/campusbridge/campusbridge/internal/dispute/internal/event"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/service"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/web"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, idGen *snowflake.EventIDGenerator) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitTablesOnce,
		repository.NewRepository,
		event.NewDisputeEventProducer,
		sequencenumber.NewGenerator,
		service.NewService,
		web.NewHandler,
	)
	return new(Module), nil
}

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
