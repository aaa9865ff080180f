package event

const (
	StatusEventsTopic = "milestone_status_events"
	// PortfolioFactsTopic 里程碑完成后发给档案系统, 作为学生作品集的事实来源
	PortfolioFactsTopic = "portfolio_facts"
	// CustodyConfirmationEventsTopic 托管方放款到账确认, 由回调网关写入
	CustodyConfirmationEventsTopic = "custody_confirmation_events"
)

type StatusChangedEvent struct {
	EventID    int64  `json:"eventId"`
	SN         string `json:"sn"`
	ProjectID  int64  `json:"projectId"`
	FromStatus uint8  `json:"fromStatus"`
	ToStatus   uint8  `json:"toStatus"`
	OccurredAt int64  `json:"occurredAt"`
}

type PortfolioFactEvent struct {
	EventID     int64  `json:"eventId"`
	SN          string `json:"sn"`
	ProjectID   int64  `json:"projectId"`
	StudentID   int64  `json:"studentId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	OnTime      bool   `json:"onTime"`
	CompletedAt int64  `json:"completedAt"`
}

type CustodyConfirmationEvent struct {
	SN          string `json:"sn"`
	CustodyRef  string `json:"custodyRef"`
	ConfirmedAt int64  `json:"confirmedAt"`
}
