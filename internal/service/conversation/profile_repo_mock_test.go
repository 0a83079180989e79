package conversation

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id domain.Identity) (*domain.Profile, error)
	LockPairFunc func(ctx context.Context, a domain.Identity, b domain.Identity) ([]domain.Profile, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  domain.Identity
		}
		LockPair []struct {
			Ctx context.Context
			A   domain.Identity
			B   domain.Identity
		}
	}
	lockGetByID  sync.RWMutex
	lockLockPair sync.RWMutex
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  domain.Identity
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  domain.Identity
} {
	var calls []struct {
		Ctx context.Context
		Id  domain.Identity
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) LockPair(ctx context.Context, a domain.Identity, b domain.Identity) ([]domain.Profile, error) {
	if mock.LockPairFunc == nil {
		panic("profileRepoMock.LockPairFunc: method is nil but profileRepo.LockPair was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Identity
		B   domain.Identity
	}{
		Ctx: ctx,
		A:   a,
		B:   b,
	}
	mock.lockLockPair.Lock()
	mock.calls.LockPair = append(mock.calls.LockPair, callInfo)
	mock.lockLockPair.Unlock()
	return mock.LockPairFunc(ctx, a, b)
}

func (mock *profileRepoMock) LockPairCalls() []struct {
	Ctx context.Context
	A   domain.Identity
	B   domain.Identity
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Identity
		B   domain.Identity
	}
	mock.lockLockPair.RLock()
	calls = mock.calls.LockPair
	mock.lockLockPair.RUnlock()
	return calls
}
