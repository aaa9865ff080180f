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

import "fmt"

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusDraft            Status = 1
	StatusProposed         Status = 2
	StatusAccepted         Status = 3
	StatusFinalized        Status = 4
	StatusFunded           Status = 5
	StatusInProgress       Status = 6
	StatusSubmitted        Status = 7
	StatusSupervisorReview Status = 8
	StatusPartnerReview    Status = 9
	StatusApproved         Status = 10
	StatusChangesRequested Status = 11
	StatusReleased         Status = 12
	StatusCompleted        Status = 13
)

// transitions 是里程碑状态的流转图
// CHANGES_REQUESTED 回到 IN_PROGRESS 形成返工环, 其余单向
var transitions = map[Status][]Status{
	StatusDraft:            {StatusProposed},
	StatusProposed:         {StatusAccepted},
	StatusAccepted:         {StatusFinalized},
	StatusFinalized:        {StatusFunded},
	StatusFunded:           {StatusInProgress},
	StatusInProgress:       {StatusSubmitted},
	StatusSubmitted:        {StatusSupervisorReview},
	StatusSupervisorReview: {StatusPartnerReview, StatusChangesRequested},
	StatusPartnerReview:    {StatusApproved, StatusChangesRequested},
	StatusApproved:         {StatusReleased, StatusChangesRequested},
	StatusChangesRequested: {StatusInProgress},
	StatusReleased:         {StatusCompleted},
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

type EscrowStatus uint8

func (s EscrowStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	EscrowStatusPending  EscrowStatus = 1
	EscrowStatusFunded   EscrowStatus = 2
	EscrowStatusHeld     EscrowStatus = 3
	EscrowStatusReleased EscrowStatus = 4
)

// Milestone 里程碑, 金额一律为最小货币单位(分)
type Milestone struct {
	ID                 int64
	SN                 string
	ProjectID          int64
	StudentID          int64
	PartnerID          int64
	SupervisorID       int64
	// ProposedBy 提案方ID, 定稿只能由另一方确认
	ProposedBy         int64
	Title              string
	Scope              string
	AcceptanceCriteria string
	// DueDate 毫秒时间戳
	DueDate  int64
	Amount   int64
	Currency string
	Status   Status
	// EscrowStatus 资金侧状态, 与里程碑状态分开演进
	EscrowStatus EscrowStatus
	// SupervisorGate 导师审核通过后置位, 返工时清零
	SupervisorGate bool
	Artifacts      []Artifact
	Version        int64
	Archived       bool
	Ctime          int64
	Utime          int64
}

// Artifact 交付物, 只增不删
type Artifact struct {
	ID          int64
	MilestoneID int64
	Name        string
	URI         string
	UploadedBy  int64
	Ctime       int64
}

// Escrow 托管记录, AmountHeld 与 CustodyRef 写入后不再变化
type Escrow struct {
	ID          int64
	MilestoneID int64
	SN          string
	AmountHeld  int64
	Currency    string
	CustodyRef  string
	Status      EscrowStatus
	FundedAt    int64
	ReleasedAt  int64
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
	// RoleSystem 定时任务与消息消费方的身份
	RoleSystem = "system"
)

const (
	ReasonEscrowNotHeld    = "escrow_not_held"
	ReasonDisputeOpen      = "dispute_open"
	ReasonGateNotSet       = "gate_not_set"
	ReasonOfferNotAccepted = "offer_not_accepted"
	ReasonArtifactRequired = "artifact_required"
	ReasonCapturePending   = "capture_pending"
)

// PreconditionError 守卫不满足, Reason 用固定词表方便调用方分支
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("前置条件不满足: %s", e.Reason)
}

func NewPreconditionError(reason string) *PreconditionError {
	return &PreconditionError{Reason: reason}
}
