package auth

import (
	"context"
	"sync"
)

var _ mailSender = &mailSenderMock{}

type mailSenderMock struct {
	SendWelcomeFunc func(ctx context.Context, email, name string) error

	calls struct {
		SendWelcome []struct {
			Ctx   context.Context
			Email string
			Name  string
		}
	}
	lockSendWelcome sync.RWMutex
}

func (mock *mailSenderMock) SendWelcome(ctx context.Context, email, name string) error {
	if mock.SendWelcomeFunc == nil {
		panic("mailSenderMock.SendWelcomeFunc: method is nil but mailSender.SendWelcome was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Name  string
	}{Ctx: ctx, Email: email, Name: name}
	mock.lockSendWelcome.Lock()
	mock.calls.SendWelcome = append(mock.calls.SendWelcome, callInfo)
	mock.lockSendWelcome.Unlock()
	return mock.SendWelcomeFunc(ctx, email, name)
}

func (mock *mailSenderMock) SendWelcomeCalls() []struct {
	Ctx   context.Context
	Email string
	Name  string
} {
	mock.lockSendWelcome.RLock()
	calls := mock.calls.SendWelcome
	mock.lockSendWelcome.RUnlock()
	return calls
}
