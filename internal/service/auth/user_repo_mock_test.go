package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mindpath/mindpath-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	GetByExternalIDFunc      func(ctx context.Context, externalID string) (*domain.User, error)
	CreateFunc               func(ctx context.Context, user *domain.User) (*domain.User, error)
	LinkExternalIDFunc       func(ctx context.Context, id uuid.UUID, externalID string) error
	MarkWelcomeEmailSentFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByExternalID []struct {
			Ctx        context.Context
			ExternalID string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		LinkExternalID []struct {
			Ctx        context.Context
			ID         uuid.UUID
			ExternalID string
		}
		MarkWelcomeEmailSent []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID              sync.RWMutex
	lockGetByEmail           sync.RWMutex
	lockGetByExternalID      sync.RWMutex
	lockCreate               sync.RWMutex
	lockLinkExternalID       sync.RWMutex
	lockMarkWelcomeEmailSent sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	if mock.GetByExternalIDFunc == nil {
		panic("userRepoMock.GetByExternalIDFunc: method is nil but userRepo.GetByExternalID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ExternalID string
	}{Ctx: ctx, ExternalID: externalID}
	mock.lockGetByExternalID.Lock()
	mock.calls.GetByExternalID = append(mock.calls.GetByExternalID, callInfo)
	mock.lockGetByExternalID.Unlock()
	return mock.GetByExternalIDFunc(ctx, externalID)
}

func (mock *userRepoMock) GetByExternalIDCalls() []struct {
	Ctx        context.Context
	ExternalID string
} {
	mock.lockGetByExternalID.RLock()
	calls := mock.calls.GetByExternalID
	mock.lockGetByExternalID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) LinkExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	if mock.LinkExternalIDFunc == nil {
		panic("userRepoMock.LinkExternalIDFunc: method is nil but userRepo.LinkExternalID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		ExternalID string
	}{Ctx: ctx, ID: id, ExternalID: externalID}
	mock.lockLinkExternalID.Lock()
	mock.calls.LinkExternalID = append(mock.calls.LinkExternalID, callInfo)
	mock.lockLinkExternalID.Unlock()
	return mock.LinkExternalIDFunc(ctx, id, externalID)
}

func (mock *userRepoMock) LinkExternalIDCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	ExternalID string
} {
	mock.lockLinkExternalID.RLock()
	calls := mock.calls.LinkExternalID
	mock.lockLinkExternalID.RUnlock()
	return calls
}

func (mock *userRepoMock) MarkWelcomeEmailSent(ctx context.Context, id uuid.UUID) error {
	if mock.MarkWelcomeEmailSentFunc == nil {
		panic("userRepoMock.MarkWelcomeEmailSentFunc: method is nil but userRepo.MarkWelcomeEmailSent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkWelcomeEmailSent.Lock()
	mock.calls.MarkWelcomeEmailSent = append(mock.calls.MarkWelcomeEmailSent, callInfo)
	mock.lockMarkWelcomeEmailSent.Unlock()
	return mock.MarkWelcomeEmailSentFunc(ctx, id)
}

func (mock *userRepoMock) MarkWelcomeEmailSentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkWelcomeEmailSent.RLock()
	calls := mock.calls.MarkWelcomeEmailSent
	mock.lockMarkWelcomeEmailSent.RUnlock()
	return calls
}
