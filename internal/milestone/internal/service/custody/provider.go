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

package custody

import (
	"context"
	"errors"
)

var (
	// ErrCapturePending 托管方已受理但资金尚未确认入账, 对账任务稍后回查
	ErrCapturePending = errors.New("托管划扣尚未确认")
	ErrCaptureFailed  = errors.New("托管划扣失败")
)

type CaptureRequest struct {
	// IdempotencyKey 作为托管方的外部单号, 重复提交同一单号不会重复扣款
	IdempotencyKey string
	Description    string
	Amount         int64
	Currency       string
}

type DisburseRequest struct {
	IdempotencyKey string
	CustodyRef     string
	// PayeeAccount 托管方侧的收款账户标识
	PayeeAccount string
	Amount       int64
	Currency     string
	Remark       string
}

type CaptureStatus uint8

const (
	CaptureStatusPending CaptureStatus = 1
	CaptureStatusHeld    CaptureStatus = 2
	CaptureStatusFailed  CaptureStatus = 3
)

// Provider 资金托管方
// 所有调用都可能超时, 调用方必须把超时当作"结果未知"处理
//
//go:generate mockgen -source=./provider.go -package=custodymocks -destination=./mocks/provider.mock.go Provider
type Provider interface {
	// Capture 发起资金划入托管, 成功返回托管方交易单号
	// 返回 ErrCapturePending 表示已受理未确认, 此时托管方可能还给不出交易单号
	Capture(ctx context.Context, req CaptureRequest) (string, error)
	// QueryCapture 按外部单号回查划扣结果, 供对账任务使用
	QueryCapture(ctx context.Context, idempotencyKey string) (CaptureStatus, string, error)
	// Disburse 把托管资金放给收款方, 成功返回放款凭证号
	Disburse(ctx context.Context, req DisburseRequest) (string, error)
}
