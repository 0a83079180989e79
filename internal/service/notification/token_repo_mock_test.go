package notification

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	UpsertFunc       func(ctx context.Context, tok domain.DeliveryToken) error
	ListByOwnerFunc  func(ctx context.Context, owner domain.Identity) ([]domain.DeliveryToken, error)
	DeleteTokensFunc func(ctx context.Context, owner domain.Identity, tokens []string) (int64, error)
	DeleteStaleFunc  func(ctx context.Context, before time.Time) (int64, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			Tok domain.DeliveryToken
		}
		ListByOwner []struct {
			Ctx   context.Context
			Owner domain.Identity
		}
		DeleteTokens []struct {
			Ctx    context.Context
			Owner  domain.Identity
			Tokens []string
		}
		DeleteStale []struct {
			Ctx    context.Context
			Before time.Time
		}
	}
	lockUpsert       sync.RWMutex
	lockListByOwner  sync.RWMutex
	lockDeleteTokens sync.RWMutex
	lockDeleteStale  sync.RWMutex
}

func (mock *tokenRepoMock) Upsert(ctx context.Context, tok domain.DeliveryToken) error {
	if mock.UpsertFunc == nil {
		panic("tokenRepoMock.UpsertFunc: method is nil but tokenRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tok domain.DeliveryToken
	}{
		Ctx: ctx,
		Tok: tok,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, tok)
}

func (mock *tokenRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	Tok domain.DeliveryToken
} {
	var calls []struct {
		Ctx context.Context
		Tok domain.DeliveryToken
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *tokenRepoMock) ListByOwner(ctx context.Context, owner domain.Identity) ([]domain.DeliveryToken, error) {
	if mock.ListByOwnerFunc == nil {
		panic("tokenRepoMock.ListByOwnerFunc: method is nil but tokenRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.Identity
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, owner)
}

func (mock *tokenRepoMock) ListByOwnerCalls() []struct {
	Ctx   context.Context
	Owner domain.Identity
} {
	var calls []struct {
		Ctx   context.Context
		Owner domain.Identity
	}
	mock.lockListByOwner.RLock()
	calls = mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteTokens(ctx context.Context, owner domain.Identity, tokens []string) (int64, error) {
	if mock.DeleteTokensFunc == nil {
		panic("tokenRepoMock.DeleteTokensFunc: method is nil but tokenRepo.DeleteTokens was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Owner  domain.Identity
		Tokens []string
	}{
		Ctx:    ctx,
		Owner:  owner,
		Tokens: tokens,
	}
	mock.lockDeleteTokens.Lock()
	mock.calls.DeleteTokens = append(mock.calls.DeleteTokens, callInfo)
	mock.lockDeleteTokens.Unlock()
	return mock.DeleteTokensFunc(ctx, owner, tokens)
}

func (mock *tokenRepoMock) DeleteTokensCalls() []struct {
	Ctx    context.Context
	Owner  domain.Identity
	Tokens []string
} {
	var calls []struct {
		Ctx    context.Context
		Owner  domain.Identity
		Tokens []string
	}
	mock.lockDeleteTokens.RLock()
	calls = mock.calls.DeleteTokens
	mock.lockDeleteTokens.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	if mock.DeleteStaleFunc == nil {
		panic("tokenRepoMock.DeleteStaleFunc: method is nil but tokenRepo.DeleteStale was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before time.Time
	}{
		Ctx:    ctx,
		Before: before,
	}
	mock.lockDeleteStale.Lock()
	mock.calls.DeleteStale = append(mock.calls.DeleteStale, callInfo)
	mock.lockDeleteStale.Unlock()
	return mock.DeleteStaleFunc(ctx, before)
}

func (mock *tokenRepoMock) DeleteStaleCalls() []struct {
	Ctx    context.Context
	Before time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Before time.Time
	}
	mock.lockDeleteStale.RLock()
	calls = mock.calls.DeleteStale
	mock.lockDeleteStale.RUnlock()
	return calls
}
