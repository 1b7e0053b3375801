package repository

import (
	"context"

	"github.com/dashteam/dashteam/internal/model"
	"gorm.io/gorm"
)

type ChecklistRepo interface {
	Create(ctx context.Context, item *model.ChecklistItem) error
	ListByFollowup(ctx context.Context, followupID string) ([]model.ChecklistItem, error)
	GetByID(ctx context.Context, id string) (*model.ChecklistItem, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type checklistRepo struct {
	db *gorm.DB
}

func NewChecklistRepo(db *gorm.DB) ChecklistRepo {
	return &checklistRepo{db: db}
}

func (r *checklistRepo) Create(ctx context.Context, item *model.ChecklistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *checklistRepo) ListByFollowup(ctx context.Context, followupID string) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	err := r.db.WithContext(ctx).
		Where("followup_id = ?", followupID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *checklistRepo) GetByID(ctx context.Context, id string) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *checklistRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.ChecklistItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *checklistRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChecklistItem{}).Error
}
