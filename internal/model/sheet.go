package model

import (
	"time"

	"gorm.io/datatypes"
)

// ConnectedSheet 已连接的 Google Sheets 表格
// data 里存的是最近一次同步下来的整张 CSV（行 × 列）
type ConnectedSheet struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID       string         `gorm:"type:varchar(36);uniqueIndex:idx_user_sheet;not null" json:"user_id"`
	SheetID      string         `gorm:"type:varchar(128);uniqueIndex:idx_user_sheet;not null" json:"sheet_id"`
	Name         string         `gorm:"type:varchar(255)" json:"name"`
	Data         datatypes.JSON `gorm:"type:json" json:"data"`
	LastSyncedAt *time.Time     `json:"last_synced_at"`
}

func (ConnectedSheet) TableName() string {
	return "connected_sheets"
}

// SheetStats 按表格聚合的导入统计
type SheetStats struct {
	Contacts  int64 `json:"contacts"`
	Followups int64 `json:"followups"`
}
