package model

import "time"

// FollowupSection 跟进流程的四个区
type FollowupSection string

const (
	SectionUrgent   FollowupSection = "urgent"
	SectionList     FollowupSection = "list"
	SectionCalendar FollowupSection = "calendar"
	SectionChecks   FollowupSection = "checks"
)

func (s FollowupSection) Valid() bool {
	switch s {
	case SectionUrgent, SectionList, SectionCalendar, SectionChecks:
		return true
	}
	return false
}

// Followup 是联系人的跟进影子记录
// contactName/Email/Phone/Company 是创建时的快照，源 Contact 后续修改不会回写
// (user_id, contact_id, section) 上的唯一索引兜底防止重复行
type Followup struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    string `gorm:"type:varchar(36);uniqueIndex:idx_user_contact_section;not null" json:"user_id"`
	ContactID string `gorm:"type:varchar(36);uniqueIndex:idx_user_contact_section;not null" json:"contact_id"`

	ContactName    string  `gorm:"type:varchar(255);not null" json:"contact_name"`
	ContactEmail   *string `gorm:"type:varchar(255)" json:"contact_email"`
	ContactPhone   *string `gorm:"type:varchar(64)" json:"contact_phone"`
	ContactCompany *string `gorm:"type:varchar(255)" json:"contact_company"`

	Section   FollowupSection `gorm:"type:varchar(16);uniqueIndex:idx_user_contact_section;index" json:"section"`
	Notes     *string         `gorm:"type:text" json:"notes"`
	DueDate   *time.Time      `json:"due_date"`
	Completed bool            `gorm:"default:false" json:"completed"`

	ScheduledDate *time.Time `json:"scheduled_date"`
	ActionType    *string    `gorm:"type:varchar(32)" json:"action_type"`
	SourceSheetID *string    `gorm:"type:varchar(128);index" json:"source_sheet_id"`

	Checklist []ChecklistItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Followup) TableName() string {
	return "followups"
}

// ChecklistItem 关系型任务项，归属于唯一一个 Followup
type ChecklistItem struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	FollowupID string    `gorm:"type:varchar(36);index;not null" json:"followup_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Completed  bool      `gorm:"default:false" json:"completed"`
}

func (ChecklistItem) TableName() string {
	return "checklist_items"
}
