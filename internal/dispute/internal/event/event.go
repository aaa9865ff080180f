package event

const DisputeEventsTopic = "dispute_events"

const (
	TypeRaised    = "raised"
	TypeEscalated = "escalated"
	TypeResolved  = "resolved"
)

// DisputeEvent 争议生命周期事件, 供通知与审计系统消费
type DisputeEvent struct {
	EventID     int64  `json:"eventId"`
	Type        string `json:"type"`
	SN          string `json:"sn"`
	SubjectType uint8  `json:"subjectType"`
	SubjectID   int64  `json:"subjectId"`
	Level       uint8  `json:"level"`
	OccurredAt  int64  `json:"occurredAt"`
}
