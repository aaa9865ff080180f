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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/transferbatch"
)

type fakeNativeAPI struct {
	txn *payments.Transaction
}

func (f *fakeNativeAPI) Prepay(ctx context.Context, req native.PrepayRequest) (*native.PrepayResponse, *core.APIResult, error) {
	return &native.PrepayResponse{CodeUrl: core.String("weixin://wxpay/bizpayurl")}, nil, nil
}

func (f *fakeNativeAPI) QueryOrderByOutTradeNo(ctx context.Context, req native.QueryOrderByOutTradeNoRequest) (*payments.Transaction, *core.APIResult, error) {
	return f.txn, nil, nil
}

type fakeTransferAPI struct{}

func (f *fakeTransferAPI) InitiateBatchTransfer(ctx context.Context, req transferbatch.InitiateBatchTransferRequest) (*transferbatch.InitiateBatchTransferResponse, *core.APIResult, error) {
	return &transferbatch.InitiateBatchTransferResponse{BatchId: core.String("batch-001")}, nil, nil
}

func TestWechatProvider_Capture(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		txn     *payments.Transaction
		wantRef string
		wantErr error
	}{
		{
			name: "支付完成, 返回交易单号",
			txn: &payments.Transaction{
				TradeState:    core.String("SUCCESS"),
				TransactionId: core.String("wx-txn-001"),
			},
			wantRef: "wx-txn-001",
		},
		{
			// 未支付完成时微信侧没有 TransactionId
			name:    "未支付完成, 受理未确认且没有交易单号",
			txn:     &payments.Transaction{TradeState: core.String("NOTPAY")},
			wantRef: "",
			wantErr: ErrCapturePending,
		},
		{
			name:    "支付中同样按受理未确认处理",
			txn:     &payments.Transaction{TradeState: core.String("USERPAYING")},
			wantRef: "",
			wantErr: ErrCapturePending,
		},
		{
			name:    "订单关闭按划扣失败处理",
			txn:     &payments.Transaction{TradeState: core.String("CLOSED")},
			wantRef: "",
			wantErr: ErrCaptureFailed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := NewWechatProvider(&fakeNativeAPI{txn: tc.txn}, &fakeTransferAPI{},
				"wxappid", "mchid", "https://campusbridge.cn/api/custody/callback")
			ref, err := p.Capture(context.Background(), CaptureRequest{
				IdempotencyKey: "MS001:fund",
				Description:    "第一阶段交付",
				Amount:         500000,
				Currency:       "CNY",
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRef, ref)
		})
	}
}

func TestWechatProvider_QueryCapture(t *testing.T) {
	t.Parallel()
	p := NewWechatProvider(&fakeNativeAPI{txn: &payments.Transaction{
		TradeState:    core.String("SUCCESS"),
		TransactionId: core.String("wx-txn-002"),
	}}, &fakeTransferAPI{}, "wxappid", "mchid", "https://campusbridge.cn/api/custody/callback")

	status, ref, err := p.QueryCapture(context.Background(), "MS002:fund")
	assert.NoError(t, err)
	assert.Equal(t, CaptureStatusHeld, status)
	assert.Equal(t, "wx-txn-002", ref)
}
