package board

import (
	"context"
	"sync"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/board"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByKeyFunc    func(ctx context.Context, table string, key board.Key) (*domain.BoardCard, error)
	InsertFunc      func(ctx context.Context, table string, key board.Key, tasks []domain.TaskItem) (int64, error)
	UpdateTasksFunc func(ctx context.Context, table string, id int64, tasks []domain.TaskItem) error
	ListByThemeFunc func(ctx context.Context, table, userName, userEmail, theme string) ([]domain.BoardCard, error)

	calls struct {
		GetByKey []struct {
			Ctx   context.Context
			Table string
			Key   board.Key
		}
		Insert []struct {
			Ctx   context.Context
			Table string
			Key   board.Key
			Tasks []domain.TaskItem
		}
		UpdateTasks []struct {
			Ctx   context.Context
			Table string
			ID    int64
			Tasks []domain.TaskItem
		}
		ListByTheme []struct {
			Ctx       context.Context
			Table     string
			UserName  string
			UserEmail string
			Theme     string
		}
	}
	lockGetByKey    sync.RWMutex
	lockInsert      sync.RWMutex
	lockUpdateTasks sync.RWMutex
	lockListByTheme sync.RWMutex
}

func (mock *cardRepoMock) GetByKey(ctx context.Context, table string, key board.Key) (*domain.BoardCard, error) {
	if mock.GetByKeyFunc == nil {
		panic("cardRepoMock.GetByKeyFunc: method is nil but cardRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Table string
		Key   board.Key
	}{Ctx: ctx, Table: table, Key: key}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, table, key)
}

func (mock *cardRepoMock) GetByKeyCalls() []struct {
	Ctx   context.Context
	Table string
	Key   board.Key
} {
	mock.lockGetByKey.RLock()
	calls := mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *cardRepoMock) Insert(ctx context.Context, table string, key board.Key, tasks []domain.TaskItem) (int64, error) {
	if mock.InsertFunc == nil {
		panic("cardRepoMock.InsertFunc: method is nil but cardRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Table string
		Key   board.Key
		Tasks []domain.TaskItem
	}{Ctx: ctx, Table: table, Key: key, Tasks: tasks}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, table, key, tasks)
}

func (mock *cardRepoMock) InsertCalls() []struct {
	Ctx   context.Context
	Table string
	Key   board.Key
	Tasks []domain.TaskItem
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *cardRepoMock) UpdateTasks(ctx context.Context, table string, id int64, tasks []domain.TaskItem) error {
	if mock.UpdateTasksFunc == nil {
		panic("cardRepoMock.UpdateTasksFunc: method is nil but cardRepo.UpdateTasks was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Table string
		ID    int64
		Tasks []domain.TaskItem
	}{Ctx: ctx, Table: table, ID: id, Tasks: tasks}
	mock.lockUpdateTasks.Lock()
	mock.calls.UpdateTasks = append(mock.calls.UpdateTasks, callInfo)
	mock.lockUpdateTasks.Unlock()
	return mock.UpdateTasksFunc(ctx, table, id, tasks)
}

func (mock *cardRepoMock) UpdateTasksCalls() []struct {
	Ctx   context.Context
	Table string
	ID    int64
	Tasks []domain.TaskItem
} {
	mock.lockUpdateTasks.RLock()
	calls := mock.calls.UpdateTasks
	mock.lockUpdateTasks.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByTheme(ctx context.Context, table, userName, userEmail, theme string) ([]domain.BoardCard, error) {
	if mock.ListByThemeFunc == nil {
		panic("cardRepoMock.ListByThemeFunc: method is nil but cardRepo.ListByTheme was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Table     string
		UserName  string
		UserEmail string
		Theme     string
	}{Ctx: ctx, Table: table, UserName: userName, UserEmail: userEmail, Theme: theme}
	mock.lockListByTheme.Lock()
	mock.calls.ListByTheme = append(mock.calls.ListByTheme, callInfo)
	mock.lockListByTheme.Unlock()
	return mock.ListByThemeFunc(ctx, table, userName, userEmail, theme)
}

func (mock *cardRepoMock) ListByThemeCalls() []struct {
	Ctx       context.Context
	Table     string
	UserName  string
	UserEmail string
	Theme     string
} {
	mock.lockListByTheme.RLock()
	calls := mock.calls.ListByTheme
	mock.lockListByTheme.RUnlock()
	return calls
}
