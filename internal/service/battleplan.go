package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BattlePlanService struct {
	repo repository.BattlePlanRepo
}

func NewBattlePlanService(repo repository.BattlePlanRepo) *BattlePlanService {
	return &BattlePlanService{repo: repo}
}

// Get 返回用户的 30 天计划，第一次访问时用默认计划（Plan v3）落库
func (s *BattlePlanService) Get(ctx context.Context, userID string) ([]model.BattlePlanDay, error) {
	days, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(days) > 0 {
		return days, nil
	}

	seeded := make([]model.BattlePlanDay, 0, len(model.DefaultBattlePlan))
	for _, seed := range model.DefaultBattlePlan {
		routine, _ := json.Marshal(seed.Routine)
		id, _ := uuid.NewV7()
		seeded = append(seeded, model.BattlePlanDay{
			ID:      id.String(),
			UserID:  userID,
			Day:     seed.Day,
			Phase:   seed.Phase,
			Weekday: seed.Weekday,
			Title:   seed.Title,
			Mission: seed.Mission,
			KPI:     seed.KPI,
			Routine: datatypes.JSON(routine),
		})
	}
	if err := s.repo.CreateBatch(ctx, seeded); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// BattlePlanUpdate 单日局部更新
type BattlePlanUpdate struct {
	Phase   *string
	Weekday *string
	Title   *string
	Mission *string
	KPI     *string
	Routine *[]string
}

func (s *BattlePlanService) UpdateDay(ctx context.Context, userID string, day int, upd BattlePlanUpdate) (*model.BattlePlanDay, error) {
	if day < 1 || day > 30 {
		return nil, ErrInvalidInput
	}
	existing, err := s.repo.GetDay(ctx, userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]any{}
	if upd.Phase != nil {
		fields["phase"] = *upd.Phase
	}
	if upd.Weekday != nil {
		fields["weekday"] = *upd.Weekday
	}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Mission != nil {
		fields["mission"] = *upd.Mission
	}
	if upd.KPI != nil {
		fields["kpi"] = *upd.KPI
	}
	if upd.Routine != nil {
		raw, err := json.Marshal(*upd.Routine)
		if err != nil {
			return nil, err
		}
		fields["routine"] = datatypes.JSON(raw)
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, existing.ID, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.GetDay(ctx, userID, day)
}
