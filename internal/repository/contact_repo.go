package repository

import (
	"context"

	"github.com/dashteam/dashteam/internal/model"
	"gorm.io/gorm"
)

// ContactFilter 列表筛选条件
type ContactFilter struct {
	Type         model.ContactType
	HasChecklist bool
}

// ContactRepo 定义接口 (为了方便 Mock)
type ContactRepo interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context, userID string, filter ContactFilter) ([]model.Contact, error)
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	ListScheduled(ctx context.Context, userID string) ([]model.Contact, error)
	CountBySourceSheet(ctx context.Context, userID string) (map[string]int64, error)
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepo) List(ctx context.Context, userID string, filter ContactFilter) ([]model.Contact, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.HasChecklist {
		q = q.Where("checklist IS NOT NULL")
	}

	var contacts []model.Contact
	err := q.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update 用 map 更新，这样才能把列显式置 NULL
func (r *contactRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.Contact{}).Where("id = ?", id).Updates(fields).Error
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Contact{}).Error
}

func (r *contactRepo) ListScheduled(ctx context.Context, userID string) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scheduled_date IS NOT NULL", userID).
		Order("scheduled_date ASC").
		Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo) CountBySourceSheet(ctx context.Context, userID string) (map[string]int64, error) {
	var rows []struct {
		SourceSheetID string
		N             int64
	}
	err := r.db.WithContext(ctx).Model(&model.Contact{}).
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
