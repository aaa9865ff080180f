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

package job

import (
	"context"

	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPendingCapturesJob)(nil)

// SyncPendingCapturesJob 回查停在 FINALIZED 且有外部单号的里程碑
// 托管方确认后补做入账收尾, 失败的清掉单号允许重试
type SyncPendingCapturesJob struct {
	svc    service.Service
	limit  int
	logger *elog.Component
}

func NewSyncPendingCapturesJob(svc service.Service, limit int) *SyncPendingCapturesJob {
	return &SyncPendingCapturesJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (s *SyncPendingCapturesJob) Name() string {
	return "SyncPendingCapturesJob"
}

func (s *SyncPendingCapturesJob) Run(ctx context.Context) error {
	// 回查不会把所有行都移出待查集合, 所以用递增 offset 翻页
	for offset := 0; ; offset += s.limit {
		milestones, total, err := s.svc.FindPendingCaptures(ctx, offset, s.limit)
		if err != nil {
			return err
		}
		for _, m := range milestones {
			err = s.svc.ResolveCapture(ctx, m)
			if err != nil {
				s.logger.Error("回查托管划扣失败",
					elog.FieldErr(err),
					elog.String("sn", m.SN),
				)
			}
		}
		if len(milestones) < s.limit {
			break
		}
		if offset+s.limit >= int(total) {
			break
		}
	}
	return nil
}
