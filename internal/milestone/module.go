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

package milestone

import (
	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/event/consumer"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/job"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	// SyncPendingCapturesJob 定时回查未确认的托管划扣
	SyncPendingCapturesJob *SyncPendingCapturesJob
	// Consumer 托管方放款确认的消费者, 由装配方启动
	Consumer *consumer.CustodyConfirmationConsumer
}

type Handler = web.Handler
type Service = service.Service
type Config = service.Config
type SyncPendingCapturesJob = job.SyncPendingCapturesJob

type Milestone = domain.Milestone
type Artifact = domain.Artifact
type Escrow = domain.Escrow
type Operator = domain.Operator
