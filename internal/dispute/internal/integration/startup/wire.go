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

package startup

import (
	"sync"

	"github.com/campusbridge/campusbridge/internal/dispute"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/event"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/repository/dao"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/service"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/web"
	"github.com/campusbridge/campusbridge/internal/pkg/sequencenumber"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	testioc "github.com/campusbridge/campusbridge/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(idGen *snowflake.EventIDGenerator) (*dispute.Module, error) {
	wire.Build(
		testioc.BaseSet,
		InitDAO,
		repository.NewRepository,
		event.NewDisputeEventProducer,
		sequencenumber.NewGenerator,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(dispute.Module), "*"),
	)
	return new(dispute.Module), nil
}

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
