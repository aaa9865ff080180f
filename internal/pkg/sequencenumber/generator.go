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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// TimestampFunc 生成时间戳部分
type TimestampFunc func(time.Time) int64

// ShortUUIDFunc 生成随机部分
type ShortUUIDFunc func() string

// Generator 生成申请/里程碑/争议的序列号
// 序列号 = 毫秒时间戳 + 业务ID后四位 + shortuuid 凑齐 32 位
type Generator struct {
	timestampFunc TimestampFunc
	shortUUIDFunc ShortUUIDFunc
}

func NewGeneratorWith(timestampFunc TimestampFunc, uuidFunc ShortUUIDFunc) *Generator {
	return &Generator{
		timestampFunc: timestampFunc,
		shortUUIDFunc: uuidFunc,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() })
}

func (g *Generator) Generate(id int64) (string, error) {
	timestamp := g.timestampFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", id%10000)
	uuid := g.shortUUIDFunc()
	return fmt.Sprintf("%d%s%s", timestamp, lastFour, uuid)[:32], nil
}
