package repository

import (
	"context"

	"github.com/dashteam/dashteam/internal/model"
	"gorm.io/gorm"
)

type TransactionRepo interface {
	Create(ctx context.Context, tx *model.Transaction) error
	List(ctx context.Context, userID string, txType model.TransactionType) ([]model.Transaction, error)
	GetByID(ctx context.Context, id string) (*model.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepo {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepo) List(ctx context.Context, userID string, txType model.TransactionType) ([]model.Transaction, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if txType != "" {
		q = q.Where("type = ?", txType)
	}

	var txs []model.Transaction
	err := q.Order("date DESC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Transaction{}).Error
}

type SubscriptionRepo interface {
	Create(ctx context.Context, sub *model.Subscription) error
	List(ctx context.Context, userID string, category model.SubscriptionCategory) ([]model.Subscription, error)
	GetByID(ctx context.Context, id string) (*model.Subscription, error)
	Delete(ctx context.Context, id string) error
}

type subscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepo {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepo) List(ctx context.Context, userID string, category model.SubscriptionCategory) ([]model.Subscription, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var subs []model.Subscription
	err := q.Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepo) GetByID(ctx context.Context, id string) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscription{}).Error
}
