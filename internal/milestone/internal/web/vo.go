package web

import (
	"github.com/campusbridge/campusbridge/internal/milestone/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type ProposeReq struct {
	ProjectID    int64  `json:"projectId"`
	StudentID    int64  `json:"studentId"`
	PartnerID    int64  `json:"partnerId"`
	SupervisorID int64  `json:"supervisorId"`
	Title        string `json:"title"`
	Scope        string `json:"scope"`
	Criteria     string `json:"criteria"`
	// DueDate 毫秒时间戳
	DueDate  int64  `json:"dueDate"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type MidReq struct {
	MID int64 `json:"mid"`
}

// FundReq 资金操作要求带请求ID去重
type FundReq struct {
	RequestID string `json:"requestID"`
	MID       int64  `json:"mid"`
}

type ReleaseReq struct {
	RequestID string `json:"requestID"`
	MID       int64  `json:"mid"`
}

type ArtifactReq struct {
	MID  int64  `json:"mid"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

type ReviewReq struct {
	MID     int64  `json:"mid"`
	Approve bool   `json:"approve"`
	Notes   string `json:"notes,omitempty"`
}

type RevertReq struct {
	MID   int64  `json:"mid"`
	Notes string `json:"notes,omitempty"`
}

type ListReq struct {
	ProjectID int64 `json:"projectId"`
	Offset    int   `json:"offset,omitempty"`
	Limit     int   `json:"limit,omitempty"`
}

type Milestone struct {
	ID             int64      `json:"id,omitempty"`
	SN             string     `json:"sn,omitempty"`
	ProjectID      int64      `json:"projectId,omitempty"`
	StudentID      int64      `json:"studentId,omitempty"`
	PartnerID      int64      `json:"partnerId,omitempty"`
	SupervisorID   int64      `json:"supervisorId,omitempty"`
	ProposedBy     int64      `json:"proposedBy,omitempty"`
	Title          string     `json:"title,omitempty"`
	Scope          string     `json:"scope,omitempty"`
	Criteria       string     `json:"criteria,omitempty"`
	DueDate        int64      `json:"dueDate,omitempty"`
	Amount         int64      `json:"amount,omitempty"`
	Currency       string     `json:"currency,omitempty"`
	Status         uint8      `json:"status,omitempty"`
	EscrowStatus   uint8      `json:"escrowStatus,omitempty"`
	SupervisorGate bool       `json:"supervisorGate,omitempty"`
	Artifacts      []Artifact `json:"artifacts,omitempty"`
	Ctime          int64      `json:"ctime,omitempty"`
}

type Artifact struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	URI        string `json:"uri,omitempty"`
	UploadedBy int64  `json:"uploadedBy,omitempty"`
	Ctime      int64  `json:"ctime,omitempty"`
}

type MilestoneList struct {
	Total      int64       `json:"total,omitempty"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

func newMilestone(m domain.Milestone) Milestone {
	return Milestone{
		ID:             m.ID,
		SN:             m.SN,
		ProjectID:      m.ProjectID,
		StudentID:      m.StudentID,
		PartnerID:      m.PartnerID,
		SupervisorID:   m.SupervisorID,
		ProposedBy:     m.ProposedBy,
		Title:          m.Title,
		Scope:          m.Scope,
		Criteria:       m.AcceptanceCriteria,
		DueDate:        m.DueDate,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         m.Status.ToUint8(),
		EscrowStatus:   m.EscrowStatus.ToUint8(),
		SupervisorGate: m.SupervisorGate,
		Artifacts: slice.Map(m.Artifacts, func(idx int, src domain.Artifact) Artifact {
			return Artifact{
				ID:         src.ID,
				Name:       src.Name,
				URI:        src.URI,
				UploadedBy: src.UploadedBy,
				Ctime:      src.Ctime,
			}
		}),
		Ctime: m.Ctime,
	}
}

func newMilestoneList(milestones []domain.Milestone, total int64) MilestoneList {
	return MilestoneList{
		Total: total,
		Milestones: slice.Map(milestones, func(idx int, src domain.Milestone) Milestone {
			return newMilestone(src)
		}),
	}
}
