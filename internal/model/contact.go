package model

import (
	"time"

	"gorm.io/datatypes"
)

// ContactType 联系人分类（四个桶）
type ContactType string

const (
	ContactTypeClient     ContactType = "CLIENT"
	ContactTypeInterested ContactType = "INTERESTED"
	ContactTypeToContact  ContactType = "TO_CONTACT"
	ContactTypeVault      ContactType = "VAULT"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeClient, ContactTypeInterested, ContactTypeToContact, ContactTypeVault:
		return true
	}
	return false
}

type ContactStatus string

const (
	ContactStatusActive  ContactStatus = "ACTIVE"
	ContactStatusPending ContactStatus = "PENDING"
	ContactStatusUrgent  ContactStatus = "URGENT"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusActive, ContactStatusPending, ContactStatusUrgent:
		return true
	}
	return false
}

// Contact 是映射 contacts 表的结构体
// Checklist 是内嵌 JSON 列，和 Followup 的关系型 checklist 是两套东西
type Contact struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID  string        `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Name    string        `gorm:"type:varchar(255);not null" json:"name"`
	Email   *string       `gorm:"type:varchar(255)" json:"email"`
	Phone   *string       `gorm:"type:varchar(64)" json:"phone"`
	Company *string       `gorm:"type:varchar(255)" json:"company"`
	Type    ContactType   `gorm:"type:varchar(16);index" json:"type"`
	Status  ContactStatus `gorm:"type:varchar(16)" json:"status"`
	Notes   *string       `gorm:"type:text" json:"notes"`

	LastContact   *time.Time `json:"last_contact"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	ActionType    *string    `gorm:"type:varchar(32)" json:"action_type"`
	SourceSheetID *string    `gorm:"type:varchar(128);index" json:"source_sheet_id"`

	// 为空时必须存 NULL，绝不能存 []
	Checklist datatypes.JSON `gorm:"type:json" json:"checklist"`
}

func (Contact) TableName() string {
	return "contacts"
}

// EmbeddedChecklistItem 内嵌在 Contact.Checklist JSON 列里的任务项
type EmbeddedChecklistItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
