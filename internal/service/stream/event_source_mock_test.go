package stream

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var _ eventSource = &eventSourceMock{}

type eventSourceMock struct {
	SubscribeFunc func(recipient domain.Identity, h func(ctx context.Context, ev domain.Event)) (func() error, error)

	calls struct {
		Subscribe []struct {
			Recipient domain.Identity
			H         func(ctx context.Context, ev domain.Event)
		}
	}
	lockSubscribe sync.RWMutex
}

func (mock *eventSourceMock) Subscribe(recipient domain.Identity, h func(ctx context.Context, ev domain.Event)) (func() error, error) {
	if mock.SubscribeFunc == nil {
		panic("eventSourceMock.SubscribeFunc: method is nil but eventSource.Subscribe was just called")
	}
	callInfo := struct {
		Recipient domain.Identity
		H         func(ctx context.Context, ev domain.Event)
	}{
		Recipient: recipient,
		H:         h,
	}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(recipient, h)
}

func (mock *eventSourceMock) SubscribeCalls() []struct {
	Recipient domain.Identity
	H         func(ctx context.Context, ev domain.Event)
} {
	var calls []struct {
		Recipient domain.Identity
		H         func(ctx context.Context, ev domain.Event)
	}
	mock.lockSubscribe.RLock()
	calls = mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}
