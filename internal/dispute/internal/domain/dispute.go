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

import "errors"

// ErrTerminalLevel 已在最高层级, 不能再升级
var ErrTerminalLevel = errors.New("争议已在最高层级")

type SubjectType uint8

func (s SubjectType) ToUint8() uint8 {
	return uint8(s)
}

const (
	SubjectTypeMilestone   SubjectType = 1
	SubjectTypePayout      SubjectType = 2
	SubjectTypeApplication SubjectType = 3
	SubjectTypeSupervision SubjectType = 4
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOpen     Status = 1
	StatusInReview Status = 2
	StatusResolved Status = 3
)

// Level 处理层级, 只升不降, 逐级不跳级
type Level uint8

func (l Level) ToUint8() uint8 {
	return uint8(l)
}

const (
	LevelStudentPartner  Level = 1
	LevelSupervisor      Level = 2
	LevelUniversityAdmin Level = 3
	LevelSuperAdmin      Level = 4
)

// Next 返回上一级, 已到 SUPER_ADMIN 时返回 ErrTerminalLevel
func (l Level) Next() (Level, error) {
	if l >= LevelSuperAdmin {
		return l, ErrTerminalLevel
	}
	return l + 1, nil
}

type Dispute struct {
	ID          int64
	SN          string
	SubjectType SubjectType
	SubjectID   int64
	Reason      string
	Description string
	Evidence    []string
	Status      Status
	Level       Level
	RaisedBy    int64
	// AssigneeID 进入 IN_REVIEW 后指定的处理人
	AssigneeID int64
	Resolution string
	Version    int64
	Ctime      int64
	Utime      int64
	ResolvedAt int64
}

// Active 争议是否仍压着标的(OPEN 或 IN_REVIEW)
func (d Dispute) Active() bool {
	return d.Status == StatusOpen || d.Status == StatusInReview
}

type Operator struct {
	ID   int64
	Role string
}

const (
	RoleStudent    = "student"
	RolePartner    = "partner"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

type ReviewOutcome uint8

const (
	OutcomeResolve  ReviewOutcome = 1
	OutcomeEscalate ReviewOutcome = 2
)
