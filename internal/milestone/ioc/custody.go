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

package ioc

import (
	"context"

	"github.com/campusbridge/campusbridge/internal/milestone/internal/service/custody"
	"github.com/gotomicro/ego/core/econf"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/transferbatch"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
)

type WechatConfig struct {
	AppID        string
	MchID        string
	MchKey       string
	MchSerialNum string

	KeyPath string

	CustodyNotifyURL string
}

func InitWechatConfig() WechatConfig {
	var cfg WechatConfig
	err := econf.UnmarshalKey("wechat.custody", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitWechatClient(cfg WechatConfig) *core.Client {
	// 商户私钥用于给请求签名
	mchPrivateKey, err := utils.LoadPrivateKeyWithPath(cfg.KeyPath)
	if err != nil {
		panic(err)
	}
	client, err := core.NewClient(
		context.Background(),
		option.WithWechatPayAutoAuthCipher(
			cfg.MchID, cfg.MchSerialNum,
			mchPrivateKey, cfg.MchKey),
	)
	if err != nil {
		panic(err)
	}
	return client
}

func InitNativeApiService(cli *core.Client) *native.NativeApiService {
	return &native.NativeApiService{
		Client: cli,
	}
}

func InitTransferApiService(cli *core.Client) *transferbatch.TransferBatchApiService {
	return &transferbatch.TransferBatchApiService{
		Client: cli,
	}
}

func InitWechatProvider(nativeSvc *native.NativeApiService,
	transferSvc *transferbatch.TransferBatchApiService,
	cfg WechatConfig) *custody.WechatProvider {
	return custody.NewWechatProvider(nativeSvc, transferSvc, cfg.AppID, cfg.MchID, cfg.CustodyNotifyURL)
}
