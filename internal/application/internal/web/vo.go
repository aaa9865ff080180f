package web

import (
	"github.com/campusbridge/campusbridge/internal/application/internal/domain"
)

type SubmitReq struct {
	ProjectID    int64   `json:"projectId"`
	Type         uint8   `json:"type"`
	ApplicantIDs []int64 `json:"applicantIds"`
	Statement    string  `json:"statement,omitempty"`
}

type EvaluateReq struct {
	AID        int64    `json:"aid"`
	SkillMatch float64  `json:"skillMatch"`
	Portfolio  float64  `json:"portfolio"`
	Rating     float64  `json:"rating"`
	OnTimeRate float64  `json:"onTimeRate"`
	ReworkRate float64  `json:"reworkRate"`
	Supervisor *float64 `json:"supervisor,omitempty"`
	Partner    *float64 `json:"partner,omitempty"`
}

type ShortlistReq struct {
	ProjectID int64   `json:"projectId"`
	Threshold float64 `json:"threshold,omitempty"`
	TopN      int     `json:"topN,omitempty"`
}

type OfferReq struct {
	AID       int64 `json:"aid"`
	ExpiresAt int64 `json:"expiresAt"`
}

type RespondReq struct {
	AID    int64 `json:"aid"`
	Accept bool  `json:"accept"`
}

type AidReq struct {
	AID int64 `json:"aid"`
}

type ListReq struct {
	ProjectID int64 `json:"projectId"`
	Offset    int   `json:"offset,omitempty"`
	Limit     int   `json:"limit,omitempty"`
}

type Application struct {
	ID             int64   `json:"id,omitempty"`
	SN             string  `json:"sn,omitempty"`
	ProjectID      int64   `json:"projectId,omitempty"`
	Type           uint8   `json:"type,omitempty"`
	ApplicantIDs   []int64 `json:"applicantIds,omitempty"`
	Statement      string  `json:"statement,omitempty"`
	Status         uint8   `json:"status,omitempty"`
	Score          Score   `json:"score,omitempty"`
	OfferExpiresAt int64   `json:"offerExpiresAt,omitempty"`
	Ctime          int64   `json:"ctime,omitempty"`
	Utime          int64   `json:"utime,omitempty"`
}

type Score struct {
	ID         int64    `json:"id,omitempty"`
	AutoScore  float64  `json:"autoScore,omitempty"`
	Supervisor *float64 `json:"supervisor,omitempty"`
	Partner    *float64 `json:"partner,omitempty"`
	Final      float64  `json:"final,omitempty"`
}

type ApplicationList struct {
	Total        int64         `json:"total,omitempty"`
	Applications []Application `json:"applications,omitempty"`
}

func newApplication(app domain.Application) Application {
	return Application{
		ID:             app.ID,
		SN:             app.SN,
		ProjectID:      app.ProjectID,
		Type:           uint8(app.Type),
		ApplicantIDs:   app.ApplicantIDs,
		Statement:      app.Statement,
		Status:         app.Status.ToUint8(),
		Score:          newScore(app.Score),
		OfferExpiresAt: app.OfferExpiresAt,
		Ctime:          app.Ctime,
		Utime:          app.Utime,
	}
}

func newScore(score domain.Score) Score {
	return Score{
		ID:         score.ID,
		AutoScore:  score.AutoScore,
		Supervisor: score.Supervisor,
		Partner:    score.Partner,
		Final:      score.Final,
	}
}
