package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowupService struct {
	repo      repository.FollowupRepo
	checklist repository.ChecklistRepo
}

func NewFollowupService(repo repository.FollowupRepo, checklist repository.ChecklistRepo) *FollowupService {
	return &FollowupService{repo: repo, checklist: checklist}
}

// FollowupInput 创建跟进的参数，快照字段由调用方在复制时刻填好
type FollowupInput struct {
	ContactID      string
	ContactName    string
	ContactEmail   *string
	ContactPhone   *string
	ContactCompany *string
	Section        model.FollowupSection
	Notes          *string
	DueDate        *time.Time
	SourceSheetID  *string
}

// FollowupUpdate 局部更新，nil 表示不动，可空字段传空串置 NULL
type FollowupUpdate struct {
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	ContactCompany *string
	Section        *model.FollowupSection
	Notes          *string
	DueDate        *string
	Completed      *bool
	ScheduledDate  *string
	ActionType     *string
}

func (s *FollowupService) List(ctx context.Context, userID string, section model.FollowupSection) ([]model.Followup, error) {
	if section != "" && !section.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, userID, section)
}

// Create 建跟进行。先查重，唯一索引兜底并发窗口
func (s *FollowupService) Create(ctx context.Context, userID string, input FollowupInput) (*model.Followup, error) {
	if input.ContactID == "" || input.ContactName == "" || !input.Section.Valid() {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.FindBySection(ctx, userID, input.ContactID, input.Section); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, _ := uuid.NewV7()
	followup := &model.Followup{
		ID:             id.String(),
		UserID:         userID,
		ContactID:      input.ContactID,
		ContactName:    input.ContactName,
		ContactEmail:   emptyToNil(input.ContactEmail),
		ContactPhone:   emptyToNil(input.ContactPhone),
		ContactCompany: emptyToNil(input.ContactCompany),
		Section:        input.Section,
		Notes:          input.Notes,
		DueDate:        input.DueDate,
		SourceSheetID:  emptyToNil(input.SourceSheetID),
	}

	if err := s.repo.Create(ctx, followup); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return followup, nil
}

func (s *FollowupService) Update(ctx context.Context, userID, id string, upd FollowupUpdate) (*model.Followup, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if upd.ContactName != nil {
		fields["contact_name"] = *upd.ContactName
	}
	if upd.ContactEmail != nil {
		fields["contact_email"] = nullable(*upd.ContactEmail)
	}
	if upd.ContactPhone != nil {
		fields["contact_phone"] = nullable(*upd.ContactPhone)
	}
	if upd.ContactCompany != nil {
		fields["contact_company"] = nullable(*upd.ContactCompany)
	}
	if upd.Section != nil {
		if !upd.Section.Valid() {
			return nil, ErrInvalidInput
		}
		fields["section"] = *upd.Section
	}
	if upd.Notes != nil {
		fields["notes"] = nullable(*upd.Notes)
	}
	if upd.DueDate != nil {
		t, err := parseNullableTime(*upd.DueDate)
		if err != nil {
			return nil, ErrInvalidInput
		}
		fields["due_date"] = t
	}
	if upd.Completed != nil {
		fields["completed"] = *upd.Completed
	}
	if upd.ScheduledDate != nil {
		t, err := parseNullableTime(*upd.ScheduledDate)
		if err != nil {
			return nil, ErrInvalidInput
		}
		fields["scheduled_date"] = t
	}
	if upd.ActionType != nil {
		fields["action_type"] = nullable(*upd.ActionType)
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

func (s *FollowupService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ==========================================
// 关系型 checklist
// ==========================================

func (s *FollowupService) ListChecklist(ctx context.Context, userID, followupID string) ([]model.ChecklistItem, error) {
	if _, err := s.getOwned(ctx, userID, followupID); err != nil {
		return nil, err
	}
	return s.checklist.ListByFollowup(ctx, followupID)
}

// AddChecklistItem 加任务项，并触发自动建档规则：
// 给非 checks 区的跟进加第一条任务时，保证该联系人在 checks 区也有一条跟进
// （只复制快照元数据，不复制任务项本身，任务项走 SyncChecklistToChecks）
func (s *FollowupService) AddChecklistItem(ctx context.Context, userID, followupID, content string, completed bool) (*model.ChecklistItem, error) {
	if content == "" {
		return nil, ErrInvalidInput
	}
	followup, err := s.getOwned(ctx, userID, followupID)
	if err != nil {
		return nil, err
	}

	itemID, _ := uuid.NewV7()
	item := &model.ChecklistItem{
		ID:         itemID.String(),
		FollowupID: followupID,
		Content:    content,
		Completed:  completed,
	}
	if err := s.checklist.Create(ctx, item); err != nil {
		return nil, err
	}

	if followup.Section != model.SectionChecks {
		if err := s.ensureChecksFollowup(ctx, followup); err != nil {
			// 任务项已经建好了，影子行建失败只记日志，不回滚
			slog.Error("ensure checks followup failed", "contact_id", followup.ContactID, "error", err)
		}
	}

	return item, nil
}

func (s *FollowupService) UpdateChecklistItem(ctx context.Context, userID, itemID string, content *string, completed *bool) (*model.ChecklistItem, error) {
	if _, err := s.getOwnedItem(ctx, userID, itemID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if content != nil {
		if *content == "" {
			return nil, ErrInvalidInput
		}
		fields["content"] = *content
	}
	if completed != nil {
		fields["completed"] = *completed
	}
	if len(fields) > 0 {
		if err := s.checklist.Update(ctx, itemID, fields); err != nil {
			return nil, err
		}
	}
	return s.checklist.GetByID(ctx, itemID)
}

func (s *FollowupService) DeleteChecklistItem(ctx context.Context, userID, itemID string) error {
	if _, err := s.getOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.checklist.Delete(ctx, itemID)
}

// SyncChecklistToChecks 把一个跟进当前的全部任务项搬到该联系人的 checks 区：
// checks 行不存在就先建，然后逐项追加。一次调用内完成，不再留半成品
func (s *FollowupService) SyncChecklistToChecks(ctx context.Context, userID, followupID string) (int, error) {
	source, err := s.getOwned(ctx, userID, followupID)
	if err != nil {
		return 0, err
	}
	if source.Section == model.SectionChecks {
		return 0, ErrInvalidInput
	}

	items, err := s.checklist.ListByFollowup(ctx, followupID)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	target, err := s.repo.FindBySection(ctx, userID, source.ContactID, model.SectionChecks)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		target, err = s.createChecksShadow(ctx, source)
	}
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, item := range items {
		id, _ := uuid.NewV7()
		clone := &model.ChecklistItem{
			ID:         id.String(),
			FollowupID: target.ID,
			Content:    item.Content,
			Completed:  item.Completed,
		}
		if err := s.checklist.Create(ctx, clone); err != nil {
			// 已复制的不回滚，调用方看到错误后重试
			return copied, err
		}
		copied++
	}

	slog.Info("checklist synced to checks", "contact_id", source.ContactID, "items", copied)
	return copied, nil
}

// ensureChecksFollowup 幂等：有就算了，没有才建
func (s *FollowupService) ensureChecksFollowup(ctx context.Context, source *model.Followup) error {
	_, err := s.repo.FindBySection(ctx, source.UserID, source.ContactID, model.SectionChecks)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	_, err = s.createChecksShadow(ctx, source)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 并发窗口里别人先建了，目的已达成
		return nil
	}
	return err
}

func (s *FollowupService) createChecksShadow(ctx context.Context, source *model.Followup) (*model.Followup, error) {
	id, _ := uuid.NewV7()
	shadow := &model.Followup{
		ID:             id.String(),
		UserID:         source.UserID,
		ContactID:      source.ContactID,
		ContactName:    source.ContactName,
		ContactEmail:   source.ContactEmail,
		ContactPhone:   source.ContactPhone,
		ContactCompany: source.ContactCompany,
		Section:        model.SectionChecks,
		Notes:          source.Notes,
	}
	if err := s.repo.Create(ctx, shadow); err != nil {
		return nil, err
	}
	return shadow, nil
}

func (s *FollowupService) getOwned(ctx context.Context, userID, id string) (*model.Followup, error) {
	followup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if followup.UserID != userID {
		return nil, ErrNotFound
	}
	return followup, nil
}

// getOwnedItem 任务项的归属要穿透到父跟进校验
func (s *FollowupService) getOwnedItem(ctx context.Context, userID, itemID string) (*model.ChecklistItem, error) {
	item, err := s.checklist.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.getOwned(ctx, userID, item.FollowupID); err != nil {
		return nil, err
	}
	return item, nil
}
