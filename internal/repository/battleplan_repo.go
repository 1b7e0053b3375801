package repository

import (
	"context"

	"github.com/dashteam/dashteam/internal/model"
	"gorm.io/gorm"
)

type BattlePlanRepo interface {
	ListByUser(ctx context.Context, userID string) ([]model.BattlePlanDay, error)
	CreateBatch(ctx context.Context, days []model.BattlePlanDay) error
	GetDay(ctx context.Context, userID string, day int) (*model.BattlePlanDay, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type battlePlanRepo struct {
	db *gorm.DB
}

func NewBattlePlanRepo(db *gorm.DB) BattlePlanRepo {
	return &battlePlanRepo{db: db}
}

func (r *battlePlanRepo) ListByUser(ctx context.Context, userID string) ([]model.BattlePlanDay, error) {
	var days []model.BattlePlanDay
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day ASC").
		Find(&days).Error
	return days, err
}

func (r *battlePlanRepo) CreateBatch(ctx context.Context, days []model.BattlePlanDay) error {
	return r.db.WithContext(ctx).Create(&days).Error
}

func (r *battlePlanRepo) GetDay(ctx context.Context, userID string, day int) (*model.BattlePlanDay, error) {
	var d model.BattlePlanDay
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *battlePlanRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.BattlePlanDay{}).Where("id = ?", id).Updates(fields).Error
}
