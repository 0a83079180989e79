package conversation

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendFunc func(ctx context.Context, n domain.Notification) (domain.DeliveryResult, error)

	calls struct {
		Send []struct {
			Ctx context.Context
			N   domain.Notification
		}
	}
	lockSend sync.RWMutex
}

func (mock *notifierMock) Send(ctx context.Context, n domain.Notification) (domain.DeliveryResult, error) {
	if mock.SendFunc == nil {
		panic("notifierMock.SendFunc: method is nil but notifier.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Notification
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, n)
}

func (mock *notifierMock) SendCalls() []struct {
	Ctx context.Context
	N   domain.Notification
} {
	var calls []struct {
		Ctx context.Context
		N   domain.Notification
	}
	mock.lockSend.RLock()
	calls = mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
