package notification

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ExistsFunc func(ctx context.Context, id domain.Identity) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			Id  domain.Identity
		}
	}
	lockExists sync.RWMutex
}

func (mock *profileRepoMock) Exists(ctx context.Context, id domain.Identity) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("profileRepoMock.ExistsFunc: method is nil but profileRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  domain.Identity
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *profileRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	Id  domain.Identity
} {
	var calls []struct {
		Ctx context.Context
		Id  domain.Identity
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
