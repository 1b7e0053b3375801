package service

import (
	"context"
	"errors"
	"time"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinanceService 收支流水 + 订阅，派生金额全部走 decimal，避免浮点误差
type FinanceService struct {
	transactions  repository.TransactionRepo
	subscriptions repository.SubscriptionRepo
}

func NewFinanceService(transactions repository.TransactionRepo, subscriptions repository.SubscriptionRepo) *FinanceService {
	return &FinanceService{transactions: transactions, subscriptions: subscriptions}
}

type TransactionInput struct {
	Type          model.TransactionType
	Title         *string
	InvoiceNumber *string
	Description   *string
	BaseAmount    *float64
	VatRate       *float64
	Date          *time.Time
}

func (s *FinanceService) ListTransactions(ctx context.Context, userID string, txType model.TransactionType) ([]model.Transaction, error) {
	if txType != "" && !txType.Valid() {
		return nil, ErrInvalidInput
	}
	return s.transactions.List(ctx, userID, txType)
}

// CreateTransaction 派生字段只在这里算一次：
// vat = base * rate / 100, total = base + vat
func (s *FinanceService) CreateTransaction(ctx context.Context, userID string, input TransactionInput) (*model.Transaction, error) {
	if !input.Type.Valid() {
		return nil, ErrInvalidInput
	}

	var vatAmount, totalAmount *float64
	if input.BaseAmount != nil && input.VatRate != nil {
		base := decimal.NewFromFloat(*input.BaseAmount)
		rate := decimal.NewFromFloat(*input.VatRate)
		vat := base.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
		total := base.Add(vat)

		v, _ := vat.Float64()
		t, _ := total.Float64()
		vatAmount, totalAmount = &v, &t
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	id, _ := uuid.NewV7()
	tx := &model.Transaction{
		ID:            id.String(),
		UserID:        userID,
		Type:          input.Type,
		Title:         input.Title,
		InvoiceNumber: input.InvoiceNumber,
		Description:   input.Description,
		BaseAmount:    input.BaseAmount,
		VatRate:       input.VatRate,
		VatAmount:     vatAmount,
		TotalAmount:   totalAmount,
		Date:          date,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, userID, id string) error {
	existing, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.UserID != userID {
		return ErrNotFound
	}
	return s.transactions.Delete(ctx, id)
}

type SubscriptionInput struct {
	Category    model.SubscriptionCategory
	Title       *string
	Description *string
	Price       *float64
	VatRate     *float64 // 不传默认 21
	Frequency   *model.SubscriptionFrequency
	PaymentDay  *int
}

func (s *FinanceService) ListSubscriptions(ctx context.Context, userID string, category model.SubscriptionCategory) ([]model.Subscription, error) {
	if category != "" && !category.Valid() {
		return nil, ErrInvalidInput
	}
	return s.subscriptions.List(ctx, userID, category)
}

// CreateSubscription price 是含税价，按税率反推：
// base = price / (1 + rate/100), vat = price - base
func (s *FinanceService) CreateSubscription(ctx context.Context, userID string, input SubscriptionInput) (*model.Subscription, error) {
	if !input.Category.Valid() {
		return nil, ErrInvalidInput
	}
	if input.Frequency != nil && !input.Frequency.Valid() {
		return nil, ErrInvalidInput
	}
	if input.PaymentDay != nil && (*input.PaymentDay < 1 || *input.PaymentDay > 31) {
		return nil, ErrInvalidInput
	}

	vatRate := 21.0
	if input.VatRate != nil {
		if *input.VatRate < 0 {
			return nil, ErrInvalidInput
		}
		vatRate = *input.VatRate
	}

	var baseAmount, vatAmount *float64
	if input.Price != nil {
		price := decimal.NewFromFloat(*input.Price)
		divisor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(vatRate).Div(decimal.NewFromInt(100)))
		base := price.Div(divisor).Round(2)
		vat := price.Sub(base)

		b, _ := base.Float64()
		v, _ := vat.Float64()
		baseAmount, vatAmount = &b, &v
	}

	id, _ := uuid.NewV7()
	sub := &model.Subscription{
		ID:          id.String(),
		UserID:      userID,
		Category:    input.Category,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		VatRate:     vatRate,
		BaseAmount:  baseAmount,
		VatAmount:   vatAmount,
		Frequency:   input.Frequency,
		PaymentDay:  input.PaymentDay,
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *FinanceService) DeleteSubscription(ctx context.Context, userID, id string) error {
	existing, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.UserID != userID {
		return ErrNotFound
	}
	return s.subscriptions.Delete(ctx, id)
}
