package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dashteam/dashteam/internal/infrastructure/sheets"
	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SheetService 管理已连接的 Google Sheets 及其同步
type SheetService struct {
	repo      repository.SheetRepo
	contacts  repository.ContactRepo
	followups repository.FollowupRepo
	fetcher   sheets.Fetcher

	// 后台同步互斥：上一轮还没跑完就跳过这一轮，不排队
	syncMu sync.Mutex
}

func NewSheetService(repo repository.SheetRepo, contacts repository.ContactRepo, followups repository.FollowupRepo, fetcher sheets.Fetcher) *SheetService {
	return &SheetService{
		repo:      repo,
		contacts:  contacts,
		followups: followups,
		fetcher:   fetcher,
	}
}

func (s *SheetService) List(ctx context.Context, userID string) ([]model.ConnectedSheet, error) {
	return s.repo.List(ctx, userID)
}

// Connect 按分享链接或 ID 连接一张表，连接即做一次同步
func (s *SheetService) Connect(ctx context.Context, userID, urlOrID, name string) (*model.ConnectedSheet, error) {
	sheetID, err := sheets.ExtractSheetID(urlOrID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if name == "" {
		tail := sheetID
		if len(tail) > 4 {
			tail = tail[len(tail)-4:]
		}
		name = fmt.Sprintf("Sheet %s", tail)
	}
	return s.syncOne(ctx, userID, sheetID, name)
}

// Sync 手动重新同步一张已连接的表
func (s *SheetService) Sync(ctx context.Context, userID, sheetID string) (*model.ConnectedSheet, error) {
	existing, err := s.repo.GetBySheetID(ctx, userID, sheetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.syncOne(ctx, userID, sheetID, existing.Name)
}

func (s *SheetService) Disconnect(ctx context.Context, userID, sheetID string) error {
	if _, err := s.repo.GetBySheetID(ctx, userID, sheetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, userID, sheetID)
}

// Stats 按来源表聚合联系人/跟进数量
func (s *SheetService) Stats(ctx context.Context, userID string) (map[string]model.SheetStats, error) {
	contactCounts, err := s.contacts.CountBySourceSheet(ctx, userID)
	if err != nil {
		return nil, err
	}
	followupCounts, err := s.followups.CountBySourceSheet(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]model.SheetStats)
	for sheetID, n := range contactCounts {
		st := stats[sheetID]
		st.Contacts = n
		stats[sheetID] = st
	}
	for sheetID, n := range followupCounts {
		st := stats[sheetID]
		st.Followups = n
		stats[sheetID] = st
	}
	return stats, nil
}

func (s *SheetService) syncOne(ctx context.Context, userID, sheetID, name string) (*model.ConnectedSheet, error) {
	rows, err := s.fetcher.FetchCSV(ctx, sheetID)
	if err != nil {
		return nil, fmt.Errorf("sync sheet %s: %w", sheetID, err)
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	id, _ := uuid.NewV7()
	sheet := &model.ConnectedSheet{
		ID:           id.String(),
		UserID:       userID,
		SheetID:      sheetID,
		Name:         name,
		Data:         datatypes.JSON(raw),
		LastSyncedAt: &now,
	}
	if err := s.repo.Upsert(ctx, sheet); err != nil {
		return nil, err
	}
	// Upsert 命中已有行时保留原 id
	return s.repo.GetBySheetID(ctx, userID, sheetID)
}

// RunAutoSync 后台循环：每个周期把所有已连接的表拉一遍
// 上一轮还在跑就跳过，失败只记日志
func (s *SheetService) RunAutoSync(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("sheet auto-sync started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("sheet auto-sync stopped")
			return
		case <-ticker.C:
			s.syncPass(ctx)
		}
	}
}

func (s *SheetService) syncPass(ctx context.Context) {
	if !s.syncMu.TryLock() {
		slog.Warn("sheet auto-sync pass skipped, previous pass still running")
		return
	}
	defer s.syncMu.Unlock()

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		slog.Error("sheet auto-sync list failed", "error", err)
		return
	}
	for _, sheet := range all {
		if _, err := s.syncOne(ctx, sheet.UserID, sheet.SheetID, sheet.Name); err != nil {
			slog.Error("sheet auto-sync failed", "sheet_id", sheet.SheetID, "error", err)
		}
	}
}
