package repository

import (
	"context"

	"github.com/dashteam/dashteam/internal/model"
	"gorm.io/gorm"
)

type FollowupRepo interface {
	Create(ctx context.Context, followup *model.Followup) error
	List(ctx context.Context, userID string, section model.FollowupSection) ([]model.Followup, error)
	GetByID(ctx context.Context, id string) (*model.Followup, error)
	// FindBySection 按 (user, contact, section) 找唯一的跟进行
	FindBySection(ctx context.Context, userID, contactID string, section model.FollowupSection) (*model.Followup, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	ListScheduled(ctx context.Context, userID string) ([]model.Followup, error)
	CountBySourceSheet(ctx context.Context, userID string) (map[string]int64, error)
}

type followupRepo struct {
	db *gorm.DB
}

func NewFollowupRepo(db *gorm.DB) FollowupRepo {
	return &followupRepo{db: db}
}

func (r *followupRepo) Create(ctx context.Context, followup *model.Followup) error {
	return r.db.WithContext(ctx).Create(followup).Error
}

func (r *followupRepo) List(ctx context.Context, userID string, section model.FollowupSection) ([]model.Followup, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if section != "" {
		q = q.Where("section = ?", section)
	}

	var followups []model.Followup
	err := q.Order("created_at DESC").Find(&followups).Error
	return followups, err
}

func (r *followupRepo) GetByID(ctx context.Context, id string) (*model.Followup, error) {
	var followup model.Followup
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&followup).Error; err != nil {
		return nil, err
	}
	return &followup, nil
}

func (r *followupRepo) FindBySection(ctx context.Context, userID, contactID string, section model.FollowupSection) (*model.Followup, error) {
	var followup model.Followup
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND contact_id = ? AND section = ?", userID, contactID, section).
		First(&followup).Error
	if err != nil {
		return nil, err
	}
	return &followup, nil
}

func (r *followupRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.Followup{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 连带删除关系型 checklist（数据库级联之外再删一遍，防止旧表没建约束）
func (r *followupRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("followup_id = ?", id).Delete(&model.ChecklistItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Followup{}).Error
	})
}

func (r *followupRepo) ListScheduled(ctx context.Context, userID string) ([]model.Followup, error) {
	var followups []model.Followup
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_date IS NOT NULL", userID).
		Order("scheduled_date ASC").
		Find(&followups).Error
	return followups, err
}

func (r *followupRepo) CountBySourceSheet(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []struct {
		SourceSheetID string
		N             int64
	}
	err := r.db.WithContext(ctx).Model(&model.Followup{}).
		Select("source_sheet_id, count(*) as n").
		Where("user_id = ? AND source_sheet_id IS NOT NULL", userID).
		Group("source_sheet_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.SourceSheetID] = row.N
	}
	return counts, nil
}
