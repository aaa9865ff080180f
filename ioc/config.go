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
	"github.com/campusbridge/campusbridge/internal/application"
	"github.com/campusbridge/campusbridge/internal/milestone"
	"github.com/campusbridge/campusbridge/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

func InitScoreWeights() application.ScoreWeights {
	var weights application.ScoreWeights
	err := econf.UnmarshalKey("application.score", &weights)
	if err != nil {
		panic(err)
	}
	return weights
}

func InitMilestoneConfig() milestone.Config {
	var cfg milestone.Config
	err := econf.UnmarshalKey("milestone.review", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitEventIDGenerator() *snowflake.EventIDGenerator {
	type Config struct {
		NodeID uint `yaml:"nodeId"`
	}
	var cfg Config
	err := econf.UnmarshalKey("snowflake", &cfg)
	if err != nil {
		panic(err)
	}
	// 申请/里程碑/争议三条事件流
	idGen, err := snowflake.NewEventIDGenerator(cfg.NodeID, 3)
	if err != nil {
		panic(err)
	}
	return idGen
}
