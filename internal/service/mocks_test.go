package service

import (
	"context"
	"sort"
	"time"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 内存版仓储，测试里代替 MySQL。
// 行为对齐 GORM：找不到返回 gorm.ErrRecordNotFound，
// 唯一索引冲突返回 gorm.ErrDuplicatedKey。

// ---------- contacts ----------

type fakeContactRepo struct {
	rows map[string]*model.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{rows: make(map[string]*model.Contact)}
}

func (f *fakeContactRepo) Create(_ context.Context, c *model.Contact) error {
	cp := *c
	cp.CreatedAt = time.Now()
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeContactRepo) List(_ context.Context, userID string, filter repository.ContactFilter) ([]model.Contact, error) {
	var out []model.Contact
	for _, c := range f.rows {
		if c.UserID != userID {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if filter.HasChecklist && c.Checklist == nil {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContactRepo) GetByID(_ context.Context, id string) (*model.Contact, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContactRepo) Update(_ context.Context, id string, fields map[string]any) error {
	c, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "email":
			c.Email = anyToStrPtr(v)
		case "phone":
			c.Phone = anyToStrPtr(v)
		case "company":
			c.Company = anyToStrPtr(v)
		case "type":
			c.Type = v.(model.ContactType)
		case "status":
			c.Status = v.(model.ContactStatus)
		case "notes":
			s := v.(string)
			c.Notes = &s
		case "last_contact":
			c.LastContact = v.(*time.Time)
		case "scheduled_date":
			c.ScheduledDate = v.(*time.Time)
		case "action_type":
			c.ActionType = anyToStrPtr(v)
		case "checklist":
			c.Checklist = v.(datatypes.JSON)
		}
	}
	return nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeContactRepo) ListScheduled(_ context.Context, userID string) ([]model.Contact, error) {
	var out []model.Contact
	for _, c := range f.rows {
		if c.UserID == userID && c.ScheduledDate != nil {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(*out[j].ScheduledDate) })
	return out, nil
}

func (f *fakeContactRepo) CountBySourceSheet(_ context.Context, userID string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, c := range f.rows {
		if c.UserID == userID && c.SourceSheetID != nil {
			counts[*c.SourceSheetID]++
		}
	}
	return counts, nil
}

// ---------- followups ----------

type fakeFollowupRepo struct {
	rows      map[string]*model.Followup
	checklist *fakeChecklistRepo
}

func newFakeFollowupRepo(checklist *fakeChecklistRepo) *fakeFollowupRepo {
	return &fakeFollowupRepo{rows: make(map[string]*model.Followup), checklist: checklist}
}

func (f *fakeFollowupRepo) Create(_ context.Context, fu *model.Followup) error {
	for _, existing := range f.rows {
		if existing.UserID == fu.UserID && existing.ContactID == fu.ContactID && existing.Section == fu.Section {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *fu
	cp.CreatedAt = time.Now()
	f.rows[fu.ID] = &cp
	return nil
}

func (f *fakeFollowupRepo) List(_ context.Context, userID string, section model.FollowupSection) ([]model.Followup, error) {
	var out []model.Followup
	for _, fu := range f.rows {
		if fu.UserID != userID {
			continue
		}
		if section != "" && fu.Section != section {
			continue
		}
		out = append(out, *fu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeFollowupRepo) GetByID(_ context.Context, id string) (*model.Followup, error) {
	fu, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *fu
	return &cp, nil
}

func (f *fakeFollowupRepo) FindBySection(_ context.Context, userID, contactID string, section model.FollowupSection) (*model.Followup, error) {
	for _, fu := range f.rows {
		if fu.UserID == userID && fu.ContactID == contactID && fu.Section == section {
			cp := *fu
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFollowupRepo) Update(_ context.Context, id string, fields map[string]any) error {
	fu, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "contact_name":
			fu.ContactName = v.(string)
		case "contact_email":
			fu.ContactEmail = anyToStrPtr(v)
		case "contact_phone":
			fu.ContactPhone = anyToStrPtr(v)
		case "contact_company":
			fu.ContactCompany = anyToStrPtr(v)
		case "section":
			next := v.(model.FollowupSection)
			for _, other := range f.rows {
				if other.ID != id && other.UserID == fu.UserID && other.ContactID == fu.ContactID && other.Section == next {
					return gorm.ErrDuplicatedKey
				}
			}
			fu.Section = next
		case "notes":
			fu.Notes = anyToStrPtr(v)
		case "due_date":
			fu.DueDate = v.(*time.Time)
		case "completed":
			fu.Completed = v.(bool)
		case "scheduled_date":
			fu.ScheduledDate = v.(*time.Time)
		case "action_type":
			fu.ActionType = anyToStrPtr(v)
		}
	}
	return nil
}

func (f *fakeFollowupRepo) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	if f.checklist != nil {
		for itemID, item := range f.checklist.rows {
			if item.FollowupID == id {
				delete(f.checklist.rows, itemID)
			}
		}
	}
	return nil
}

func (f *fakeFollowupRepo) ListScheduled(_ context.Context, userID string) ([]model.Followup, error) {
	var out []model.Followup
	for _, fu := range f.rows {
		if fu.UserID == userID && fu.ScheduledDate != nil {
			out = append(out, *fu)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(*out[j].ScheduledDate) })
	return out, nil
}

func (f *fakeFollowupRepo) CountBySourceSheet(_ context.Context, userID string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, fu := range f.rows {
		if fu.UserID == userID && fu.SourceSheetID != nil {
			counts[*fu.SourceSheetID]++
		}
	}
	return counts, nil
}

// ---------- checklist items ----------

type fakeChecklistRepo struct {
	rows map[string]*model.ChecklistItem
	seq  int
	// 第 N 次 Create 返回错误，0 表示不注入故障
	failOnCreate int
	creates      int
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{rows: make(map[string]*model.ChecklistItem)}
}

func (f *fakeChecklistRepo) Create(_ context.Context, item *model.ChecklistItem) error {
	f.creates++
	if f.failOnCreate > 0 && f.creates == f.failOnCreate {
		return gorm.ErrInvalidTransaction
	}
	f.seq++
	cp := *item
	cp.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	f.rows[item.ID] = &cp
	return nil
}

func (f *fakeChecklistRepo) ListByFollowup(_ context.Context, followupID string) ([]model.ChecklistItem, error) {
	var out []model.ChecklistItem
	for _, item := range f.rows {
		if item.FollowupID == followupID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeChecklistRepo) GetByID(_ context.Context, id string) (*model.ChecklistItem, error) {
	item, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeChecklistRepo) Update(_ context.Context, id string, fields map[string]any) error {
	item, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "content":
			item.Content = v.(string)
		case "completed":
			item.Completed = v.(bool)
		}
	}
	return nil
}

func (f *fakeChecklistRepo) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

// ---------- transactions / subscriptions ----------

type fakeTransactionRepo struct {
	rows map[string]*model.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{rows: make(map[string]*model.Transaction)}
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *model.Transaction) error {
	cp := *tx
	f.rows[tx.ID] = &cp
	return nil
}

func (f *fakeTransactionRepo) List(_ context.Context, userID string, txType model.TransactionType) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, tx := range f.rows {
		if tx.UserID != userID {
			continue
		}
		if txType != "" && tx.Type != txType {
			continue
		}
		out = append(out, *tx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id string) (*model.Transaction, error) {
	tx, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *tx
	return &cp, nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

type fakeSubscriptionRepo struct {
	rows map[string]*model.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{rows: make(map[string]*model.Subscription)}
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, sub *model.Subscription) error {
	cp := *sub
	f.rows[sub.ID] = &cp
	return nil
}

func (f *fakeSubscriptionRepo) List(_ context.Context, userID string, category model.SubscriptionCategory) ([]model.Subscription, error) {
	var out []model.Subscription
	for _, sub := range f.rows {
		if sub.UserID != userID {
			continue
		}
		if category != "" && sub.Category != category {
			continue
		}
		out = append(out, *sub)
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) GetByID(_ context.Context, id string) (*model.Subscription, error) {
	sub, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sub
	return &cp, nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

// ---------- users ----------

type fakeUserRepo struct {
	rows map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.rows {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, fields map[string]any) error {
	u, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "password":
			u.Password = v.(string)
		}
	}
	return nil
}

// ---------- connected sheets ----------

type fakeSheetRepo struct {
	rows map[string]*model.ConnectedSheet // key: userID + "/" + sheetID
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{rows: make(map[string]*model.ConnectedSheet)}
}

func (f *fakeSheetRepo) Upsert(_ context.Context, sheet *model.ConnectedSheet) error {
	key := sheet.UserID + "/" + sheet.SheetID
	if existing, ok := f.rows[key]; ok {
		existing.Name = sheet.Name
		existing.Data = sheet.Data
		existing.LastSyncedAt = sheet.LastSyncedAt
		existing.UpdatedAt = time.Now()
		return nil
	}
	cp := *sheet
	cp.CreatedAt = time.Now()
	f.rows[key] = &cp
	return nil
}

func (f *fakeSheetRepo) List(_ context.Context, userID string) ([]model.ConnectedSheet, error) {
	var out []model.ConnectedSheet
	for _, sheet := range f.rows {
		if sheet.UserID == userID {
			out = append(out, *sheet)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSheetRepo) GetBySheetID(_ context.Context, userID, sheetID string) (*model.ConnectedSheet, error) {
	sheet, ok := f.rows[userID+"/"+sheetID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sheet
	return &cp, nil
}

func (f *fakeSheetRepo) Delete(_ context.Context, userID, sheetID string) error {
	delete(f.rows, userID+"/"+sheetID)
	return nil
}

func (f *fakeSheetRepo) ListAll(_ context.Context) ([]model.ConnectedSheet, error) {
	var out []model.ConnectedSheet
	for _, sheet := range f.rows {
		out = append(out, *sheet)
	}
	return out, nil
}

// fakeFetcher 返回预置的 CSV 行，记录被拉取过哪些表
type fakeFetcher struct {
	rows    map[string][][]string
	err     error
	fetched []string
}

func (f *fakeFetcher) FetchCSV(_ context.Context, sheetID string) ([][]string, error) {
	f.fetched = append(f.fetched, sheetID)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[sheetID], nil
}

// ---------- battle plan ----------

type fakeBattlePlanRepo struct {
	rows map[string]*model.BattlePlanDay
}

func newFakeBattlePlanRepo() *fakeBattlePlanRepo {
	return &fakeBattlePlanRepo{rows: make(map[string]*model.BattlePlanDay)}
}

func (f *fakeBattlePlanRepo) ListByUser(_ context.Context, userID string) ([]model.BattlePlanDay, error) {
	var out []model.BattlePlanDay
	for _, d := range f.rows {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (f *fakeBattlePlanRepo) CreateBatch(_ context.Context, days []model.BattlePlanDay) error {
	for i := range days {
		cp := days[i]
		f.rows[cp.ID] = &cp
	}
	return nil
}

func (f *fakeBattlePlanRepo) GetDay(_ context.Context, userID string, day int) (*model.BattlePlanDay, error) {
	for _, d := range f.rows {
		if d.UserID == userID && d.Day == day {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBattlePlanRepo) Update(_ context.Context, id string, fields map[string]any) error {
	d, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "phase":
			d.Phase = v.(string)
		case "weekday":
			d.Weekday = v.(string)
		case "title":
			d.Title = v.(string)
		case "mission":
			d.Mission = v.(string)
		case "kpi":
			d.KPI = v.(string)
		case "routine":
			d.Routine = v.(datatypes.JSON)
		}
	}
	return nil
}

func anyToStrPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}
