package tracker

import (
	"context"
	"sync"

	"github.com/mindpath/mindpath-backend/internal/adapter/postgres/tracker"
	"github.com/mindpath/mindpath-backend/internal/domain"
)

var _ counterRepo = &counterRepoMock{}

type counterRepoMock struct {
	GetByKeyFunc   func(ctx context.Context, key tracker.Key) (*domain.ActivityCounter, error)
	InsertFunc     func(ctx context.Context, key tracker.Key, count int) (int64, error)
	SetCountFunc   func(ctx context.Context, id int64, count int) error
	ListByUserFunc func(ctx context.Context, userName, userEmail string) ([]domain.ActivityCounter, error)

	calls struct {
		GetByKey []struct {
			Ctx context.Context
			Key tracker.Key
		}
		Insert []struct {
			Ctx   context.Context
			Key   tracker.Key
			Count int
		}
		SetCount []struct {
			Ctx   context.Context
			ID    int64
			Count int
		}
		ListByUser []struct {
			Ctx       context.Context
			UserName  string
			UserEmail string
		}
	}
	lockGetByKey   sync.RWMutex
	lockInsert     sync.RWMutex
	lockSetCount   sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *counterRepoMock) GetByKey(ctx context.Context, key tracker.Key) (*domain.ActivityCounter, error) {
	if mock.GetByKeyFunc == nil {
		panic("counterRepoMock.GetByKeyFunc: method is nil but counterRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key tracker.Key
	}{Ctx: ctx, Key: key}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, key)
}

func (mock *counterRepoMock) GetByKeyCalls() []struct {
	Ctx context.Context
	Key tracker.Key
} {
	mock.lockGetByKey.RLock()
	calls := mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *counterRepoMock) Insert(ctx context.Context, key tracker.Key, count int) (int64, error) {
	if mock.InsertFunc == nil {
		panic("counterRepoMock.InsertFunc: method is nil but counterRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   tracker.Key
		Count int
	}{Ctx: ctx, Key: key, Count: count}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, key, count)
}

func (mock *counterRepoMock) InsertCalls() []struct {
	Ctx   context.Context
	Key   tracker.Key
	Count int
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *counterRepoMock) SetCount(ctx context.Context, id int64, count int) error {
	if mock.SetCountFunc == nil {
		panic("counterRepoMock.SetCountFunc: method is nil but counterRepo.SetCount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Count int
	}{Ctx: ctx, ID: id, Count: count}
	mock.lockSetCount.Lock()
	mock.calls.SetCount = append(mock.calls.SetCount, callInfo)
	mock.lockSetCount.Unlock()
	return mock.SetCountFunc(ctx, id, count)
}

func (mock *counterRepoMock) SetCountCalls() []struct {
	Ctx   context.Context
	ID    int64
	Count int
} {
	mock.lockSetCount.RLock()
	calls := mock.calls.SetCount
	mock.lockSetCount.RUnlock()
	return calls
}

func (mock *counterRepoMock) ListByUser(ctx context.Context, userName, userEmail string) ([]domain.ActivityCounter, error) {
	if mock.ListByUserFunc == nil {
		panic("counterRepoMock.ListByUserFunc: method is nil but counterRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserName  string
		UserEmail string
	}{Ctx: ctx, UserName: userName, UserEmail: userEmail}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userName, userEmail)
}

func (mock *counterRepoMock) ListByUserCalls() []struct {
	Ctx       context.Context
	UserName  string
	UserEmail string
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
