package web

import (
	"github.com/campusbridge/campusbridge/internal/dispute/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type RaiseReq struct {
	SubjectType uint8    `json:"subjectType"`
	SubjectID   int64    `json:"subjectId"`
	Reason      string   `json:"reason"`
	Description string   `json:"description,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
}

type StartReviewReq struct {
	DID        int64 `json:"did"`
	AssigneeID int64 `json:"assigneeId"`
}

type ReviewReq struct {
	DID int64 `json:"did"`
	// Outcome 1=解决 2=升级
	Outcome uint8  `json:"outcome"`
	Notes   string `json:"notes,omitempty"`
}

type DidReq struct {
	DID int64 `json:"did"`
}

type SubjectReq struct {
	SubjectType uint8 `json:"subjectType"`
	SubjectID   int64 `json:"subjectId"`
}

type QueueReq struct {
	Level  uint8 `json:"level"`
	Status uint8 `json:"status"`
	Offset int   `json:"offset,omitempty"`
	Limit  int   `json:"limit,omitempty"`
}

type Dispute struct {
	ID          int64    `json:"id,omitempty"`
	SN          string   `json:"sn,omitempty"`
	SubjectType uint8    `json:"subjectType,omitempty"`
	SubjectID   int64    `json:"subjectId,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Description string   `json:"description,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
	Status      uint8    `json:"status,omitempty"`
	Level       uint8    `json:"level,omitempty"`
	RaisedBy    int64    `json:"raisedBy,omitempty"`
	AssigneeID  int64    `json:"assigneeId,omitempty"`
	Resolution  string   `json:"resolution,omitempty"`
	Ctime       int64    `json:"ctime,omitempty"`
	ResolvedAt  int64    `json:"resolvedAt,omitempty"`
}

type DisputeList struct {
	Total    int64     `json:"total,omitempty"`
	Disputes []Dispute `json:"disputes,omitempty"`
}

func newDispute(d domain.Dispute) Dispute {
	return Dispute{
		ID:          d.ID,
		SN:          d.SN,
		SubjectType: d.SubjectType.ToUint8(),
		SubjectID:   d.SubjectID,
		Reason:      d.Reason,
		Description: d.Description,
		Evidence:    d.Evidence,
		Status:      d.Status.ToUint8(),
		Level:       d.Level.ToUint8(),
		RaisedBy:    d.RaisedBy,
		AssigneeID:  d.AssigneeID,
		Resolution:  d.Resolution,
		Ctime:       d.Ctime,
		ResolvedAt:  d.ResolvedAt,
	}
}

func newDisputeList(disputes []domain.Dispute, total int64) DisputeList {
	return DisputeList{
		Total: total,
		Disputes: slice.Map(disputes, func(idx int, src domain.Dispute) Dispute {
			return newDispute(src)
		}),
	}
}
