package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mindpath/mindpath-backend/internal/domain"
)

var _ identityResolver = &identityResolverMock{}

type identityResolverMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
	GetUserByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		ValidateToken []struct {
			Ctx   context.Context
			Token string
		}
		GetUserByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockValidateToken sync.RWMutex
	lockGetUserByID   sync.RWMutex
}

func (mock *identityResolverMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if mock.ValidateTokenFunc == nil {
		panic("identityResolverMock.ValidateTokenFunc: method is nil but identityResolver.ValidateToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, token)
}

func (mock *identityResolverMock) ValidateTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}

func (mock *identityResolverMock) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetUserByIDFunc == nil {
		panic("identityResolverMock.GetUserByIDFunc: method is nil but identityResolver.GetUserByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetUserByID.Lock()
	mock.calls.GetUserByID = append(mock.calls.GetUserByID, callInfo)
	mock.lockGetUserByID.Unlock()
	return mock.GetUserByIDFunc(ctx, id)
}

func (mock *identityResolverMock) GetUserByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetUserByID.RLock()
	calls := mock.calls.GetUserByID
	mock.lockGetUserByID.RUnlock()
	return calls
}
