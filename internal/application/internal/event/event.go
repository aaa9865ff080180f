package event

const StatusEventsTopic = "application_status_events"

// StatusChangedEvent 每次申请状态流转都会发出, 供通知系统消费, 发送方不等待投递结果
type StatusChangedEvent struct {
	EventID    int64  `json:"eventId"`
	SN         string `json:"sn"`
	ProjectID  int64  `json:"projectId"`
	FromStatus uint8  `json:"fromStatus"`
	ToStatus   uint8  `json:"toStatus"`
	OccurredAt int64  `json:"occurredAt"`
}
