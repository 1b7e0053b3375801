package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSheetID = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

func newSheetFixture() (*SheetService, *fakeSheetRepo, *fakeContactRepo, *fakeFollowupRepo, *fakeFetcher) {
	repo := newFakeSheetRepo()
	contacts := newFakeContactRepo()
	followups := newFakeFollowupRepo(nil)
	fetcher := &fakeFetcher{rows: map[string][][]string{
		testSheetID: {
			{"name", "email"},
			{"Ana", "ana@example.com"},
		},
	}}
	return NewSheetService(repo, contacts, followups, fetcher), repo, contacts, followups, fetcher
}

func TestConnectByShareURL(t *testing.T) {
	svc, _, _, _, fetcher := newSheetFixture()
	ctx := context.Background()

	url := "https://docs.google.com/spreadsheets/d/" + testSheetID + "/edit#gid=0"
	sheet, err := svc.Connect(ctx, "u1", url, "Leads Q3")
	require.NoError(t, err)
	assert.Equal(t, testSheetID, sheet.SheetID)
	assert.Equal(t, "Leads Q3", sheet.Name)
	require.NotNil(t, sheet.LastSyncedAt)
	assert.Equal(t, []string{testSheetID}, fetcher.fetched, "connecting must trigger an immediate sync")

	var rows [][]string
	require.NoError(t, json.Unmarshal(sheet.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[1][0])
}

func TestConnectDefaultName(t *testing.T) {
	svc, _, _, _, _ := newSheetFixture()
	ctx := context.Background()

	sheet, err := svc.Connect(ctx, "u1", testSheetID, "")
	require.NoError(t, err)
	assert.Equal(t, "Sheet "+testSheetID[len(testSheetID)-4:], sheet.Name)
}

func TestConnectRejectsBadInput(t *testing.T) {
	svc, _, _, _, _ := newSheetFixture()
	ctx := context.Background()

	_, err := svc.Connect(ctx, "u1", "", "x")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Connect(ctx, "u1", "https://example.com/not-a-sheet", "x")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReconnectKeepsSingleRow(t *testing.T) {
	svc, _, _, _, _ := newSheetFixture()
	ctx := context.Background()

	first, err := svc.Connect(ctx, "u1", testSheetID, "Antes")
	require.NoError(t, err)
	second, err := svc.Connect(ctx, "u1", testSheetID, "Después")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must keep the original row id")
	assert.Equal(t, "Después", second.Name)

	all, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSyncUnknownSheet(t *testing.T) {
	svc, _, _, _, _ := newSheetFixture()
	_, err := svc.Sync(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncPropagatesFetchError(t *testing.T) {
	svc, _, _, _, fetcher := newSheetFixture()
	ctx := context.Background()

	_, err := svc.Connect(ctx, "u1", testSheetID, "Leads")
	require.NoError(t, err)

	fetcher.err = errors.New("boom")
	_, err = svc.Sync(ctx, "u1", testSheetID)
	assert.Error(t, err)
}

func TestDisconnect(t *testing.T) {
	svc, _, _, _, _ := newSheetFixture()
	ctx := context.Background()

	_, err := svc.Connect(ctx, "u1", testSheetID, "Leads")
	require.NoError(t, err)

	require.NoError(t, svc.Disconnect(ctx, "u1", testSheetID))
	assert.ErrorIs(t, svc.Disconnect(ctx, "u1", testSheetID), ErrNotFound)

	all, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStatsMergesContactAndFollowupCounts(t *testing.T) {
	svc, _, contacts, followups, _ := newSheetFixture()
	ctx := context.Background()

	contactSvc := NewContactService(contacts)
	for i := 0; i < 3; i++ {
		_, err := contactSvc.Create(ctx, "u1", ContactInput{
			Name:          "imported",
			Type:          "TO_CONTACT",
			SourceSheetID: strp(testSheetID),
		})
		require.NoError(t, err)
	}

	followupSvc := NewFollowupService(followups, newFakeChecklistRepo())
	_, err := followupSvc.Create(ctx, "u1", FollowupInput{
		ContactID:     "c1",
		ContactName:   "imported",
		Section:       "list",
		SourceSheetID: strp(testSheetID),
	})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)
	require.Contains(t, stats, testSheetID)
	assert.Equal(t, int64(3), stats[testSheetID].Contacts)
	assert.Equal(t, int64(1), stats[testSheetID].Followups)

	// 手工建的（无来源）不计入
	_, err = contactSvc.Create(ctx, "u1", ContactInput{Name: "manual", Type: "CLIENT"})
	require.NoError(t, err)
	stats, err = svc.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats[testSheetID].Contacts)
}
