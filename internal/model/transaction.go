package model

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction 收支流水
// vatAmount / totalAmount 只在创建时算一次，之后不会重算（没有更新路径）
type Transaction struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID        string          `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Type          TransactionType `gorm:"type:varchar(16);index" json:"type"`
	Title         *string         `gorm:"type:varchar(255)" json:"title"`
	InvoiceNumber *string         `gorm:"type:varchar(64)" json:"invoice_number"`
	Description   *string         `gorm:"type:text" json:"description"`

	BaseAmount  *float64  `gorm:"type:decimal(12,2)" json:"base_amount"`
	VatRate     *float64  `gorm:"type:decimal(5,2)" json:"vat_rate"`
	VatAmount   *float64  `gorm:"type:decimal(12,2)" json:"vat_amount"`
	TotalAmount *float64  `gorm:"type:decimal(12,2)" json:"total_amount"`
	Date        time.Time `gorm:"index" json:"date"`
}

func (Transaction) TableName() string {
	return "transactions"
}
