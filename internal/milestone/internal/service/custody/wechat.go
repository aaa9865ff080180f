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
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/transferbatch"
)

//go:generate mockgen -source=./wechat.go -package=custodymocks -destination=./mocks/wechat.mock.go NativeAPIService,TransferAPIService
type NativeAPIService interface {
	Prepay(ctx context.Context, req native.PrepayRequest) (resp *native.PrepayResponse, result *core.APIResult, err error)
	QueryOrderByOutTradeNo(ctx context.Context, req native.QueryOrderByOutTradeNoRequest) (resp *payments.Transaction, result *core.APIResult, err error)
}

type TransferAPIService interface {
	InitiateBatchTransfer(ctx context.Context, req transferbatch.InitiateBatchTransferRequest) (resp *transferbatch.InitiateBatchTransferResponse, result *core.APIResult, err error)
}

// WechatProvider 微信支付托管适配
// 划扣走 native 下单后立刻回查, 未支付完成按"已受理未确认"处理
type WechatProvider struct {
	native   NativeAPIService
	transfer TransferAPIService
	logger   *elog.Component

	appID     string
	mchID     string
	notifyURL string
}

func NewWechatProvider(nativeSvc NativeAPIService, transferSvc TransferAPIService, appID, mchID, notifyURL string) *WechatProvider {
	return &WechatProvider{
		native:    nativeSvc,
		transfer:  transferSvc,
		logger:    elog.DefaultLogger,
		appID:     appID,
		mchID:     mchID,
		notifyURL: notifyURL,
	}
}

func (p *WechatProvider) Capture(ctx context.Context, req CaptureRequest) (string, error) {
	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: 金额非法", ErrCaptureFailed)
	}
	// OutTradeNo 就是幂等键, 微信侧同单号重复下单不会重复扣款
	_, _, err := p.native.Prepay(ctx, native.PrepayRequest{
		Appid:       core.String(p.appID),
		Mchid:       core.String(p.mchID),
		Description: core.String(req.Description),
		OutTradeNo:  core.String(req.IdempotencyKey),
		TimeExpire:  core.Time(time.Now().Add(30 * time.Minute)),
		NotifyUrl:   core.String(p.notifyURL),
		Amount: &native.Amount{
			Currency: core.String(req.Currency),
			Total:    core.Int64(req.Amount),
		},
	})
	if err != nil {
		return "", fmt.Errorf("微信托管下单失败: %w", err)
	}
	status, ref, err := p.QueryCapture(ctx, req.IdempotencyKey)
	if err != nil {
		return "", err
	}
	switch status {
	case CaptureStatusHeld:
		return ref, nil
	case CaptureStatusPending:
		return ref, ErrCapturePending
	default:
		return "", ErrCaptureFailed
	}
}

func (p *WechatProvider) QueryCapture(ctx context.Context, idempotencyKey string) (CaptureStatus, string, error) {
	txn, _, err := p.native.QueryOrderByOutTradeNo(ctx, native.QueryOrderByOutTradeNoRequest{
		OutTradeNo: core.String(idempotencyKey),
		Mchid:      core.String(p.mchID),
	})
	if err != nil {
		return 0, "", fmt.Errorf("微信托管回查失败: %w", err)
	}
	var ref string
	if txn.TransactionId != nil {
		ref = *txn.TransactionId
	}
	switch *txn.TradeState {
	case "SUCCESS":
		return CaptureStatusHeld, ref, nil
	case "NOTPAY", "USERPAYING":
		return CaptureStatusPending, ref, nil
	default:
		p.logger.Warn("微信托管划扣失败",
			elog.String("outTradeNo", idempotencyKey),
			elog.String("tradeState", *txn.TradeState))
		return CaptureStatusFailed, ref, nil
	}
}

func (p *WechatProvider) Disburse(ctx context.Context, req DisburseRequest) (string, error) {
	resp, _, err := p.transfer.InitiateBatchTransfer(ctx, transferbatch.InitiateBatchTransferRequest{
		Appid:       core.String(p.appID),
		OutBatchNo:  core.String(req.IdempotencyKey),
		BatchName:   core.String(req.Remark),
		BatchRemark: core.String(req.Remark),
		TotalAmount: core.Int64(req.Amount),
		TotalNum:    core.Int64(1),
		TransferDetailList: []transferbatch.TransferDetailInput{
			{
				OutDetailNo:    core.String(req.IdempotencyKey),
				TransferAmount: core.Int64(req.Amount),
				TransferRemark: core.String(req.Remark),
				Openid:         core.String(req.PayeeAccount),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("微信托管放款失败: %w", err)
	}
	return *resp.BatchId, nil
}
