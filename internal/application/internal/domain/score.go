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

package domain

// AutoFactors 自动评分的各项子分, 取值 0-100
type AutoFactors struct {
	SkillMatch float64
	Portfolio  float64
	Rating     float64
	OnTimeRate float64
	ReworkRate float64
}

// Score 一次评估的结果, 评估一次生成一条新记录, 发出 offer 后排名用的那条不再变化
type Score struct {
	ID            int64
	ApplicationID int64
	Auto          AutoFactors
	AutoScore     float64
	// 人工子分可以缺席, 缺席时不参与加权
	Supervisor *float64
	Partner    *float64
	Final      float64
	Ctime      int64
}

// ScoreWeights 评分权重, 由配置传入而非写死
type ScoreWeights struct {
	SkillMatch float64 `yaml:"skillMatch"`
	Portfolio  float64 `yaml:"portfolio"`
	Rating     float64 `yaml:"rating"`
	OnTimeRate float64 `yaml:"onTimeRate"`
	ReworkRate float64 `yaml:"reworkRate"`

	Auto       float64 `yaml:"auto"`
	Supervisor float64 `yaml:"supervisor"`
	Partner    float64 `yaml:"partner"`
}

// AutoScore 自动子分的加权平均, 权重和为 0 时返回 0
func (w ScoreWeights) AutoScore(f AutoFactors) float64 {
	sum := w.SkillMatch + w.Portfolio + w.Rating + w.OnTimeRate + w.ReworkRate
	if sum == 0 {
		return 0
	}
	total := w.SkillMatch*f.SkillMatch +
		w.Portfolio*f.Portfolio +
		w.Rating*f.Rating +
		w.OnTimeRate*f.OnTimeRate +
		w.ReworkRate*f.ReworkRate
	return total / sum
}

// FinalScore 综合自动分与人工分
// 缺席的人工分不计入, 剩余权重重新归一化, 避免在人工评审前拉低排名
func (w ScoreWeights) FinalScore(auto float64, supervisor, partner *float64) float64 {
	total := w.Auto * auto
	sum := w.Auto
	if supervisor != nil {
		total += w.Supervisor * (*supervisor)
		sum += w.Supervisor
	}
	if partner != nil {
		total += w.Partner * (*partner)
		sum += w.Partner
	}
	if sum == 0 {
		return 0
	}
	return total / sum
}
