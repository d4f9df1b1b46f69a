package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/internal/repository"
	"github.com/limbo/agencydesk/pkg/entity"
)

type fakeStatsRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]entity.UserStats
	updateErr error
	addErr    error
	getErr    error
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{rows: make(map[uuid.UUID]entity.UserStats)}
}

func (f *fakeStatsRepo) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.rows[uid]
	if !ok {
		return nil, errorvalues.ErrStatsNotFound
	}
	return &s, nil
}

func (f *fakeStatsRepo) Update(ctx context.Context, uid uuid.UUID, mutate repository.StatsMutation) (*entity.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	current, ok := f.rows[uid]
	if !ok {
		current = entity.UserStats{UserID: uid}
	}
	next, changed := mutate(current)
	if !changed {
		f.rows[uid] = current
		return &current, nil
	}
	next.UserID = uid
	next.UpdatedAt = time.Now()
	f.rows[uid] = next
	return &next, nil
}

func (f *fakeStatsRepo) AddCompletedBlocks(ctx context.Context, uid uuid.UUID, delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return 0, f.addErr
	}
	s := f.rows[uid]
	s.UserID = uid
	s.TotalBlocksCompleted = max(s.TotalBlocksCompleted+delta, 0)
	f.rows[uid] = s
	return s.TotalBlocksCompleted, nil
}

type fakeAchievementsRepo struct {
	mu        sync.Mutex
	rows      map[string]*entity.Achievement
	insertErr error
}

func newFakeAchievementsRepo() *fakeAchievementsRepo {
	return &fakeAchievementsRepo{rows: make(map[string]*entity.Achievement)}
}

func achievementKey(a *entity.Achievement) string {
	return a.UserID.String() + "|" + string(a.Type) + "|" + repository.ScopeKey(a.Type, a.Date)
}

func (f *fakeAchievementsRepo) InsertIfAbsent(ctx context.Context, a *entity.Achievement) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return false, f.insertErr
	}
	key := achievementKey(a)
	if _, ok := f.rows[key]; ok {
		return false, nil
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	stored := *a
	f.rows[key] = &stored
	return true, nil
}

func (f *fakeAchievementsRepo) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]*entity.Achievement, 0)
	for _, a := range f.rows {
		if a.UserID == uid {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	if offset >= len(result) {
		return []*entity.Achievement{}, nil
	}
	return result[offset:min(offset+limit, len(result))], nil
}

func (f *fakeAchievementsRepo) count(uid uuid.UUID, t entity.AchievementType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.rows {
		if a.UserID == uid && a.Type == t {
			n++
		}
	}
	return n
}

type fakeBlocksRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*entity.CapacityBlock
	order   []uuid.UUID
	listErr error
}

func newFakeBlocksRepo() *fakeBlocksRepo {
	return &fakeBlocksRepo{rows: make(map[uuid.UUID]*entity.CapacityBlock)}
}

func (f *fakeBlocksRepo) add(uid uuid.UUID, day time.Time, completed, shadow bool) *entity.CapacityBlock {
	b := &entity.CapacityBlock{
		UserID:    uid,
		Date:      day,
		Title:     "block",
		Hours:     1,
		Completed: completed,
		IsShadow:  shadow,
	}
	id, _ := f.Create(context.Background(), b)
	b.ID = id
	return f.rows[id]
}

func (f *fakeBlocksRepo) Create(ctx context.Context, block *entity.CapacityBlock) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *block
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.rows[stored.ID] = &stored
	f.order = append(f.order, stored.ID)
	return stored.ID, nil
}

func (f *fakeBlocksRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CapacityBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.rows[id]
	if !ok {
		return nil, errorvalues.ErrBlockNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBlocksRepo) ListByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.CapacityBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*entity.CapacityBlock, 0)
	for _, id := range f.order {
		b, ok := f.rows[id]
		if ok && b.UserID == uid && b.Date.Equal(date) {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeBlocksRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.rows[id]
	if !ok || b.Completed == completed {
		return false, nil
	}
	b.Completed = completed
	return true, nil
}

func (f *fakeBlocksRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return errorvalues.ErrBlockNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeUsersRepo struct {
	users   []*entity.User
	listErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *entity.User) error {
	if _, err := f.FindByName(ctx, user.Name); err == nil {
		return errorvalues.ErrUserExists
	}
	stored := *user
	stored.ID = uuid.New()
	f.users = append(f.users, &stored)
	return nil
}
func (f *fakeUsersRepo) FindByName(ctx context.Context, name string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}
func (f *fakeUsersRepo) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == uid {
			return u, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}
func (f *fakeUsersRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUsersRepo) Delete(ctx context.Context, uid uuid.UUID) error    { return nil }
func (f *fakeUsersRepo) SetTelegramChatID(ctx context.Context, uid uuid.UUID, chatID *int64) error {
	u, err := f.FindByID(ctx, uid)
	if err != nil {
		return err
	}
	u.TelegramChatID = chatID
	return nil
}
func (f *fakeUsersRepo) ListWithTelegram(ctx context.Context) ([]*entity.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*entity.User, 0)
	for _, u := range f.users {
		if u.TelegramChatID != nil {
			result = append(result, u)
		}
	}
	return result, nil
}

type sentMessage struct {
	ChatID int64
	Text   string
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[int64]error
}

func (f *fakeSender) Send(ctx context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[chatID]; ok {
		return err
	}
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text})
	return nil
}
