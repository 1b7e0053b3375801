package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestSanitizeChecklist(t *testing.T) {
	items := []model.EmbeddedChecklistItem{
		{Title: "  llamar lunes  ", Completed: true},
		{Title: "   "},
		{Title: ""},
		{ID: "keep-me", Title: "enviar presupuesto"},
	}

	out := SanitizeChecklist(items)

	require.Len(t, out, 2)
	assert.Equal(t, "llamar lunes", out[0].Title)
	assert.True(t, out[0].Completed)
	assert.NotEmpty(t, out[0].ID, "missing id should be generated")
	assert.Equal(t, "keep-me", out[1].ID, "existing id must survive")
}

func TestContactCreateEmptyChecklistStoresNull(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	ctx := context.Background()

	contact, err := svc.Create(ctx, "u1", ContactInput{
		Name: "Ana",
		Type: model.ContactTypeToContact,
		Checklist: []model.EmbeddedChecklistItem{
			{Title: "  "},
			{Title: ""},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, contact.Checklist, "all-blank checklist must persist as NULL, not []")

	stored, err := repo.GetByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Checklist)
}

func TestContactChecklistRoundTrip(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	ctx := context.Background()

	contact, err := svc.Create(ctx, "u1", ContactInput{Name: "Ana", Type: model.ContactTypeClient})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", contact.ID, ContactUpdate{
		Checklist: &[]model.EmbeddedChecklistItem{{Title: "llamar"}},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Checklist)

	var items []model.EmbeddedChecklistItem
	require.NoError(t, json.Unmarshal(updated.Checklist, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "llamar", items[0].Title)
	assert.NotEmpty(t, items[0].ID)
	assert.False(t, items[0].Completed)

	// 清空后回到 NULL
	updated, err = svc.Update(ctx, "u1", contact.ID, ContactUpdate{
		Checklist: &[]model.EmbeddedChecklistItem{},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Checklist)
}

func TestContactCreateDefaultsAndValidation(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", ContactInput{Name: "", Type: model.ContactTypeClient})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, "u1", ContactInput{Name: "Ana", Type: "WHATEVER"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	contact, err := svc.Create(ctx, "u1", ContactInput{
		Name:  "Ana",
		Type:  model.ContactTypeInterested,
		Email: strp(""),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContactStatusActive, contact.Status, "status defaults to ACTIVE")
	assert.Nil(t, contact.Email, "empty email normalizes to NULL")
	assert.NotEmpty(t, contact.ID)
}

func TestContactUpdateMovesBucketInPlace(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	ctx := context.Background()

	contact, err := svc.Create(ctx, "u1", ContactInput{Name: "Ana", Type: model.ContactTypeToContact})
	require.NoError(t, err)

	next := model.ContactTypeClient
	updated, err := svc.Update(ctx, "u1", contact.ID, ContactUpdate{Type: &next})
	require.NoError(t, err)
	assert.Equal(t, model.ContactTypeClient, updated.Type)
	assert.Equal(t, contact.ID, updated.ID, "moving buckets must not create a new row")

	all, err := svc.List(ctx, "u1", repository.ContactFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestContactUpdateNullableDates(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	ctx := context.Background()

	contact, err := svc.Create(ctx, "u1", ContactInput{Name: "Ana", Type: model.ContactTypeClient})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", contact.ID, ContactUpdate{
		ScheduledDate: strp("2026-09-01T10:00:00Z"),
		ActionType:    strp("llamada"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ScheduledDate)
	assert.Equal(t, 2026, updated.ScheduledDate.Year())

	// 空串显式清掉
	updated, err = svc.Update(ctx, "u1", contact.ID, ContactUpdate{
		ScheduledDate: strp(""),
		ActionType:    strp(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ScheduledDate)
	assert.Nil(t, updated.ActionType)

	_, err = svc.Update(ctx, "u1", contact.ID, ContactUpdate{ScheduledDate: strp("not-a-date")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContactOwnershipHidesOtherUsers(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	ctx := context.Background()

	contact, err := svc.Create(ctx, "owner", ContactInput{Name: "Ana", Type: model.ContactTypeClient})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "intruder", contact.ID)
	assert.ErrorIs(t, err, ErrNotFound, "foreign contact must look like it does not exist")

	_, err = svc.Update(ctx, "intruder", contact.ID, ContactUpdate{Name: strp("hacked")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "intruder", contact.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// 原数据没动
	stored, err := svc.Get(ctx, "owner", contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", stored.Name)
}

func TestContactListFilters(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", ContactInput{Name: "Ana", Type: model.ContactTypeClient})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", ContactInput{
		Name:      "Bruno",
		Type:      model.ContactTypeVault,
		Checklist: []model.EmbeddedChecklistItem{{Title: "revisar"}},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", ContactInput{Name: "Ajeno", Type: model.ContactTypeClient})
	require.NoError(t, err)

	clients, err := svc.List(ctx, "u1", repository.ContactFilter{Type: model.ContactTypeClient})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana", clients[0].Name)

	withChecklist, err := svc.List(ctx, "u1", repository.ContactFilter{HasChecklist: true})
	require.NoError(t, err)
	require.Len(t, withChecklist, 1)
	assert.Equal(t, "Bruno", withChecklist[0].Name)
}
