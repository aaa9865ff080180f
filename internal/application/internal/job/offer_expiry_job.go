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
	"fmt"
	"time"

	"github.com/campusbridge/campusbridge/internal/application/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*OfferExpiryJob)(nil)

// OfferExpiryJob 定时把过期未响应的 offer 置为 DECLINED
// 单条处理带版本守卫, 多实例同时清扫也只会生效一次
type OfferExpiryJob struct {
	svc   service.Service
	limit int
}

func NewOfferExpiryJob(svc service.Service, limit int) *OfferExpiryJob {
	return &OfferExpiryJob{svc: svc, limit: limit}
}

func (j *OfferExpiryJob) Name() string {
	return "OfferExpiryJob"
}

func (j *OfferExpiryJob) Run(ctx context.Context) error {
	now := time.Now().UnixMilli()

	for {
		apps, total, err := j.svc.FindExpiredOffers(ctx, 0, j.limit, now)
		if err != nil {
			return fmt.Errorf("获取过期offer失败: %w", err)
		}

		for _, app := range apps {
			if err := j.svc.ExpireOffer(ctx, app); err != nil {
				return fmt.Errorf("处理过期offer失败: aid=%d, %w", app.ID, err)
			}
		}

		if len(apps) < j.limit {
			break
		}

		if int64(j.limit) >= total {
			break
		}
	}
	return nil
}
