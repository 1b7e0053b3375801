package repository

import (
	"context"

	"github.com/dashteam/dashteam/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SheetRepo interface {
	// Upsert 按 (user_id, sheet_id) 覆盖写入，连接和重新同步走同一条路
	Upsert(ctx context.Context, sheet *model.ConnectedSheet) error
	List(ctx context.Context, userID string) ([]model.ConnectedSheet, error)
	GetBySheetID(ctx context.Context, userID, sheetID string) (*model.ConnectedSheet, error)
	Delete(ctx context.Context, userID, sheetID string) error
	ListAll(ctx context.Context) ([]model.ConnectedSheet, error)
}

type sheetRepo struct {
	db *gorm.DB
}

func NewSheetRepo(db *gorm.DB) SheetRepo {
	return &sheetRepo{db: db}
}

func (r *sheetRepo) Upsert(ctx context.Context, sheet *model.ConnectedSheet) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "sheet_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "data", "last_synced_at", "updated_at"}),
	}).Create(sheet).Error
}

func (r *sheetRepo) List(ctx context.Context, userID string) ([]model.ConnectedSheet, error) {
	var sheets []model.ConnectedSheet
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&sheets).Error
	return sheets, err
}

func (r *sheetRepo) GetBySheetID(ctx context.Context, userID, sheetID string) (*model.ConnectedSheet, error) {
	var sheet model.ConnectedSheet
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND sheet_id = ?", userID, sheetID).
		First(&sheet).Error
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (r *sheetRepo) Delete(ctx context.Context, userID, sheetID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND sheet_id = ?", userID, sheetID).
		Delete(&model.ConnectedSheet{}).Error
}

// ListAll 后台定时同步用，跨所有用户
func (r *sheetRepo) ListAll(ctx context.Context) ([]model.ConnectedSheet, error) {
	var sheets []model.ConnectedSheet
	err := r.db.WithContext(ctx).Find(&sheets).Error
	return sheets, err
}
