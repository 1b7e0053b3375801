package model

import "time"

// Activity 用户最近操作记录，只留内存，不落库
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`     // create/update/delete/view/connect/sync/login/navigate
	Category    string    `json:"category"` // transaction/contact/sheet/battleplan/habit/navigation/auth/subscription
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
