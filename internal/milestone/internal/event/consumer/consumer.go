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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusbridge/campusbridge/internal/milestone/internal/event"
	"github.com/campusbridge/campusbridge/internal/milestone/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// CustodyConfirmationConsumer 消费托管方放款确认, 把 RELEASED 收口到 COMPLETED
type CustodyConfirmationConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCustodyConfirmationConsumer(svc service.Service, q mq.MQ) (*CustodyConfirmationConsumer, error) {
	const groupID = "milestone"
	consumer, err := q.Consumer(event.CustodyConfirmationEventsTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &CustodyConfirmationConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *CustodyConfirmationConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费托管放款确认事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *CustodyConfirmationConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt event.CustodyConfirmationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.ConfirmRelease(ctx, evt.SN, evt.ConfirmedAt)
	if err != nil {
		c.logger.Warn("完成里程碑失败",
			elog.FieldErr(err),
			elog.String("sn", evt.SN),
			elog.String("custody_ref", evt.CustodyRef))
	}
	return err
}
