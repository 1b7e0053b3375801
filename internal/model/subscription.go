package model

import "time"

type SubscriptionCategory string

const (
	SubscriptionAI   SubscriptionCategory = "AI"
	SubscriptionTech SubscriptionCategory = "TECH"
)

func (c SubscriptionCategory) Valid() bool {
	return c == SubscriptionAI || c == SubscriptionTech
}

type SubscriptionFrequency string

const (
	FrequencyMonthly SubscriptionFrequency = "MONTHLY"
	FrequencyAnnual  SubscriptionFrequency = "ANNUAL"
)

func (f SubscriptionFrequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyAnnual
}

// Subscription 订阅服务，price 是含税价，baseAmount/vatAmount 在创建时按税率拆分
type Subscription struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string               `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Category    SubscriptionCategory `gorm:"type:varchar(16);index" json:"category"`
	Title       *string              `gorm:"type:varchar(255)" json:"title"`
	Description *string              `gorm:"type:text" json:"description"`

	Price      *float64               `gorm:"type:decimal(12,2)" json:"price"`
	VatRate    float64                `gorm:"type:decimal(5,2);default:21" json:"vat_rate"`
	BaseAmount *float64               `gorm:"type:decimal(12,2)" json:"base_amount"`
	VatAmount  *float64               `gorm:"type:decimal(12,2)" json:"vat_amount"`
	Frequency  *SubscriptionFrequency `gorm:"type:varchar(16)" json:"frequency"`
	PaymentDay *int                   `json:"payment_day"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
