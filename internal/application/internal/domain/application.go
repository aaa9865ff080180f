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

type ApplicationType uint8

const (
	TypeIndividual ApplicationType = 1
	TypeGroup      ApplicationType = 2
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusSubmitted   Status = 1
	StatusShortlisted Status = 2
	StatusWaitlist    Status = 3
	StatusRejected    Status = 4
	StatusOffered     Status = 5
	StatusAccepted    Status = 6
	StatusDeclined    Status = 7
	StatusAssigned    Status = 8
)

// transitions 是申请状态的单向流转图, 不在表里的流转一律非法,
// REJECTED/DECLINED 没有出边, 不存在“复活”
var transitions = map[Status][]Status{
	StatusSubmitted:   {StatusShortlisted, StatusWaitlist, StatusRejected},
	StatusWaitlist:    {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusOffered, StatusRejected},
	StatusOffered:     {StatusAccepted, StatusDeclined},
	StatusAccepted:    {StatusAssigned},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

type Application struct {
	ID           int64
	SN           string
	ProjectID    int64
	Type         ApplicationType
	ApplicantIDs []int64
	Statement    string
	Status       Status
	Score        Score
	// OfferExpiresAt 为 0 表示尚未发出 offer
	OfferExpiresAt int64
	Version        int64
	Archived       bool
	Ctime          int64
	Utime          int64
}

// Operator 调用方身份, 由外部身份系统解析后传入
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

// ShortlistCriteria 二选一: Threshold 按总分下限, TopN 按名次
type ShortlistCriteria struct {
	Threshold float64
	TopN      int
}
