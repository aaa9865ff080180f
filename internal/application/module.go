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

package application

import (
	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
	"github.com/campusbridge/campusbridge/internal/application/internal/job"
	"github.com/campusbridge/campusbridge/internal/application/internal/service"
	"github.com/campusbridge/campusbridge/internal/application/internal/web"
)

type Module struct {
	Svc            Service
	Hdl            *Handler
	OfferExpiryJob *OfferExpiryJob
}

type Handler = web.Handler
type Service = service.Service
type OfferExpiryJob = job.OfferExpiryJob

type Application = domain.Application
type Operator = domain.Operator
type ScoreWeights = domain.ScoreWeights
type ShortlistCriteria = domain.ShortlistCriteria
