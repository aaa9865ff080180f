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

package dispute

import (
	"github.com/campusbridge/campusbridge/internal/dispute/internal/domain"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/service"
	"github.com/campusbridge/campusbridge/internal/dispute/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.Service

type Dispute = domain.Dispute
type SubjectType = domain.SubjectType
type Operator = domain.Operator

const (
	SubjectTypeMilestone   = domain.SubjectTypeMilestone
	SubjectTypePayout      = domain.SubjectTypePayout
	SubjectTypeApplication = domain.SubjectTypeApplication
	SubjectTypeSupervision = domain.SubjectTypeSupervision
)
