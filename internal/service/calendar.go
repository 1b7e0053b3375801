package service

import (
	"context"
	"sort"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
)

// CalendarService 合并日程视图
// 只看 scheduledDate：跟进的 dueDate 不进日历，这是和前端约定好的契约
type CalendarService struct {
	contacts  repository.ContactRepo
	followups repository.FollowupRepo
}

func NewCalendarService(contacts repository.ContactRepo, followups repository.FollowupRepo) *CalendarService {
	return &CalendarService{contacts: contacts, followups: followups}
}

func (s *CalendarService) Events(ctx context.Context, userID string) ([]model.CalendarEvent, error) {
	contacts, err := s.contacts.ListScheduled(ctx, userID)
	if err != nil {
		return nil, err
	}
	followups, err := s.followups.ListScheduled(ctx, userID)
	if err != nil {
		return nil, err
	}

	events := make([]model.CalendarEvent, 0, len(contacts)+len(followups))
	for _, c := range contacts {
		events = append(events, model.CalendarEvent{
			ID:            c.ID,
			Type:          "contact",
			Name:          c.Name,
			Email:         c.Email,
			Phone:         c.Phone,
			Company:       c.Company,
			Category:      string(c.Type),
			ScheduledDate: c.ScheduledDate,
			ActionType:    c.ActionType,
			Completed:     false,
		})
	}
	for _, f := range followups {
		events = append(events, model.CalendarEvent{
			ID:            f.ID,
			Type:          "followup",
			Name:          f.ContactName,
			Email:         f.ContactEmail,
			Phone:         f.ContactPhone,
			Company:       f.ContactCompany,
			Category:      string(f.Section),
			ScheduledDate: f.ScheduledDate,
			ActionType:    f.ActionType,
			Completed:     f.Completed,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].ScheduledDate, events[j].ScheduledDate
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})

	return events, nil
}
