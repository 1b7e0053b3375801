package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/dashteam/dashteam/internal/model"
)

// MaxActivities 每个用户最多保留的操作记录条数
const MaxActivities = 50

// ActivityService 每用户一个定长环，最新在前，纯内存，不要求持久化
type ActivityService struct {
	mu     sync.Mutex
	byUser map[string][]model.Activity
	nowFn  func() time.Time
	seq    int64
}

func NewActivityService() *ActivityService {
	return &ActivityService{
		byUser: make(map[string][]model.Activity),
		nowFn:  time.Now,
	}
}

// Record 插到头部，超过上限从尾部淘汰
func (s *ActivityService) Record(userID, actType, category, description string) model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	activity := model.Activity{
		ID:          fmt.Sprintf("%d-%d", s.nowFn().UnixMilli(), s.seq),
		Type:        actType,
		Category:    category,
		Description: description,
		Timestamp:   s.nowFn(),
	}

	list := append([]model.Activity{activity}, s.byUser[userID]...)
	if len(list) > MaxActivities {
		list = list[:MaxActivities]
	}
	s.byUser[userID] = list
	return activity
}

// List 最新在前
func (s *ActivityService) List(userID string) []model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.byUser[userID]
	out := make([]model.Activity, len(list))
	copy(out, list)
	return out
}

func (s *ActivityService) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
