package calendar

import (
	"context"
	"sync"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/calendar"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	GetByKeyFunc    func(ctx context.Context, key calendar.Key) (*domain.CalendarEntry, error)
	InsertFunc      func(ctx context.Context, e *domain.CalendarEntry) (int64, error)
	UpdateFunc      func(ctx context.Context, id int64, set map[string]any) error
	ListByThemeFunc func(ctx context.Context, userName, userEmail, theme string) ([]domain.CalendarEntry, error)

	calls struct {
		GetByKey []struct {
			Ctx context.Context
			Key calendar.Key
		}
		Insert []struct {
			Ctx   context.Context
			Entry *domain.CalendarEntry
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			Set map[string]any
		}
		ListByTheme []struct {
			Ctx       context.Context
			UserName  string
			UserEmail string
			Theme     string
		}
	}
	lockGetByKey    sync.RWMutex
	lockInsert      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockListByTheme sync.RWMutex
}

func (mock *entryRepoMock) GetByKey(ctx context.Context, key calendar.Key) (*domain.CalendarEntry, error) {
	if mock.GetByKeyFunc == nil {
		panic("entryRepoMock.GetByKeyFunc: method is nil but entryRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key calendar.Key
	}{Ctx: ctx, Key: key}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, key)
}

func (mock *entryRepoMock) GetByKeyCalls() []struct {
	Ctx context.Context
	Key calendar.Key
} {
	mock.lockGetByKey.RLock()
	calls := mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *entryRepoMock) Insert(ctx context.Context, e *domain.CalendarEntry) (int64, error) {
	if mock.InsertFunc == nil {
		panic("entryRepoMock.InsertFunc: method is nil but entryRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.CalendarEntry
	}{Ctx: ctx, Entry: e}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *entryRepoMock) InsertCalls() []struct {
	Ctx   context.Context
	Entry *domain.CalendarEntry
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, id int64, set map[string]any) error {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		Set map[string]any
	}{Ctx: ctx, ID: id, Set: set}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, set)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	Set map[string]any
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListByTheme(ctx context.Context, userName, userEmail, theme string) ([]domain.CalendarEntry, error) {
	if mock.ListByThemeFunc == nil {
		panic("entryRepoMock.ListByThemeFunc: method is nil but entryRepo.ListByTheme was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserName  string
		UserEmail string
		Theme     string
	}{Ctx: ctx, UserName: userName, UserEmail: userEmail, Theme: theme}
	mock.lockListByTheme.Lock()
	mock.calls.ListByTheme = append(mock.calls.ListByTheme, callInfo)
	mock.lockListByTheme.Unlock()
	return mock.ListByThemeFunc(ctx, userName, userEmail, theme)
}

func (mock *entryRepoMock) ListByThemeCalls() []struct {
	Ctx       context.Context
	UserName  string
	UserEmail string
	Theme     string
} {
	mock.lockListByTheme.RLock()
	calls := mock.calls.ListByTheme
	mock.lockListByTheme.RUnlock()
	return calls
}
