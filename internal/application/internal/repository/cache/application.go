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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const applicationExpiration = 10 * time.Minute

var ErrApplicationNotCached = errors.New("申请不在缓存中")

type ApplicationCache interface {
	Set(ctx context.Context, app domain.Application) error
	Get(ctx context.Context, id int64) (domain.Application, error)
	Del(ctx context.Context, id int64) error
}

type applicationECache struct {
	ec ecache.Cache
}

func NewApplicationECache(ec ecache.Cache) ApplicationCache {
	return &applicationECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "application:",
		},
	}
}

func (c *applicationECache) Set(ctx context.Context, app domain.Application) error {
	data, err := json.Marshal(app)
	if err != nil {
		return errors.Wrap(err, "序列化申请失败")
	}
	return c.ec.Set(ctx, c.key(app.ID), string(data), applicationExpiration)
}

func (c *applicationECache) Get(ctx context.Context, id int64) (domain.Application, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Application{}, ErrApplicationNotCached
	}
	if val.Err != nil {
		return domain.Application{}, errors.Wrap(val.Err, "查询申请缓存出错")
	}
	var app domain.Application
	err := json.Unmarshal([]byte(val.Val.(string)), &app)
	if err != nil {
		return domain.Application{}, errors.Wrap(err, "反序列化申请失败")
	}
	return app, nil
}

func (c *applicationECache) Del(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *applicationECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
