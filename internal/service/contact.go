package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContactService struct {
	repo repository.ContactRepo
}

func NewContactService(repo repository.ContactRepo) *ContactService {
	return &ContactService{repo: repo}
}

// ContactInput 创建联系人的参数 (DTO)
type ContactInput struct {
	Name          string
	Email         *string
	Phone         *string
	Company       *string
	Type          model.ContactType
	Status        model.ContactStatus
	Notes         *string
	LastContact   *time.Time
	SourceSheetID *string
	Checklist     []model.EmbeddedChecklistItem
}

// ContactUpdate 局部更新参数，nil 表示字段不动
// 可空的字符串字段传空串表示置 NULL；日期字段传空串同理
type ContactUpdate struct {
	Name          *string
	Email         *string
	Phone         *string
	Company       *string
	Type          *model.ContactType
	Status        *model.ContactStatus
	Notes         *string
	LastContact   *string
	ScheduledDate *string
	ActionType    *string
	Checklist     *[]model.EmbeddedChecklistItem
}

func (s *ContactService) List(ctx context.Context, userID string, filter repository.ContactFilter) ([]model.Contact, error) {
	return s.repo.List(ctx, userID, filter)
}

func (s *ContactService) Create(ctx context.Context, userID string, input ContactInput) (*model.Contact, error) {
	if input.Name == "" || !input.Type.Valid() {
		return nil, ErrInvalidInput
	}
	status := input.Status
	if status == "" {
		status = model.ContactStatusActive
	}
	if !status.Valid() {
		return nil, ErrInvalidInput
	}

	id, _ := uuid.NewV7()
	contact := &model.Contact{
		ID:            id.String(),
		UserID:        userID,
		Name:          input.Name,
		Email:         emptyToNil(input.Email),
		Phone:         emptyToNil(input.Phone),
		Company:       emptyToNil(input.Company),
		Type:          input.Type,
		Status:        status,
		Notes:         input.Notes,
		LastContact:   input.LastContact,
		SourceSheetID: emptyToNil(input.SourceSheetID),
		Checklist:     marshalChecklist(SanitizeChecklist(input.Checklist)),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, userID, id string) (*model.Contact, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *ContactService) Update(ctx context.Context, userID, id string, upd ContactUpdate) (*model.Contact, error) {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Email != nil {
		fields["email"] = nullable(*upd.Email)
	}
	if upd.Phone != nil {
		fields["phone"] = nullable(*upd.Phone)
	}
	if upd.Company != nil {
		fields["company"] = nullable(*upd.Company)
	}
	if upd.Type != nil {
		if !upd.Type.Valid() {
			return nil, ErrInvalidInput
		}
		fields["type"] = *upd.Type
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, ErrInvalidInput
		}
		fields["status"] = *upd.Status
	}
	if upd.Notes != nil {
		fields["notes"] = *upd.Notes
	}
	if upd.LastContact != nil {
		t, err := parseNullableTime(*upd.LastContact)
		if err != nil {
			return nil, ErrInvalidInput
		}
		fields["last_contact"] = t
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
	if upd.Checklist != nil {
		// 整个数组替换，最后写入者赢，不做逐项合并
		fields["checklist"] = marshalChecklist(SanitizeChecklist(*upd.Checklist))
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("contact deleted", "id", id)
	return nil
}

// getOwned 查出来并校验归属，别人的和不存在的一视同仁
func (s *ContactService) getOwned(ctx context.Context, userID, id string) (*model.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if contact.UserID != userID {
		return nil, ErrNotFound
	}
	return contact, nil
}

// SanitizeChecklist 清洗内嵌 checklist：
// trim 标题、丢掉空标题项、缺 id 的补一个 uuid
func SanitizeChecklist(items []model.EmbeddedChecklistItem) []model.EmbeddedChecklistItem {
	out := make([]model.EmbeddedChecklistItem, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, model.EmbeddedChecklistItem{
			ID:        id,
			Title:     title,
			Completed: item.Completed,
		})
	}
	return out
}

// marshalChecklist 空列表必须存 NULL，不能存 []
func marshalChecklist(items []model.EmbeddedChecklistItem) datatypes.JSON {
	if len(items) == 0 {
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// nullable 空串映射成 SQL NULL
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// parseNullableTime 空串表示置 NULL
func parseNullableTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
