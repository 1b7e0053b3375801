package model

import "time"

// CalendarEvent 合并视图的一条日程，来源是带 scheduledDate 的联系人或跟进
type CalendarEvent struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"` // "contact" 或 "followup"
	Name          string     `json:"name"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	Company       *string    `json:"company"`
	Category      string     `json:"category"` // 联系人是 type，跟进是 section
	ScheduledDate *time.Time `json:"scheduled_date"`
	ActionType    *string    `json:"action_type"`
	Completed     bool       `json:"completed"`
}
