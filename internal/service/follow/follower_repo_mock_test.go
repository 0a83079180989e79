package follow

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var _ followerRepo = &followerRepoMock{}

type followerRepoMock struct {
	InsertFunc        func(ctx context.Context, target domain.Identity, follower domain.Identity) (bool, error)
	DeleteFunc        func(ctx context.Context, target domain.Identity, follower domain.Identity) (bool, error)
	ExistsFunc        func(ctx context.Context, target domain.Identity, follower domain.Identity) (bool, error)
	ListFollowersFunc func(ctx context.Context, target domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error)
	ListFollowingFunc func(ctx context.Context, follower domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error)

	calls struct {
		Insert []struct {
			Ctx      context.Context
			Target   domain.Identity
			Follower domain.Identity
		}
		Delete []struct {
			Ctx      context.Context
			Target   domain.Identity
			Follower domain.Identity
		}
		Exists []struct {
			Ctx      context.Context
			Target   domain.Identity
			Follower domain.Identity
		}
		ListFollowers []struct {
			Ctx    context.Context
			Target domain.Identity
			Limit  int
			Offset int
		}
		ListFollowing []struct {
			Ctx      context.Context
			Follower domain.Identity
			Limit    int
			Offset   int
		}
	}
	lockInsert        sync.RWMutex
	lockDelete        sync.RWMutex
	lockExists        sync.RWMutex
	lockListFollowers sync.RWMutex
	lockListFollowing sync.RWMutex
}

func (mock *followerRepoMock) Insert(ctx context.Context, target domain.Identity, follower domain.Identity) (bool, error) {
	if mock.InsertFunc == nil {
		panic("followerRepoMock.InsertFunc: method is nil but followerRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Target   domain.Identity
		Follower domain.Identity
	}{
		Ctx:      ctx,
		Target:   target,
		Follower: follower,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, target, follower)
}

func (mock *followerRepoMock) InsertCalls() []struct {
	Ctx      context.Context
	Target   domain.Identity
	Follower domain.Identity
} {
	var calls []struct {
		Ctx      context.Context
		Target   domain.Identity
		Follower domain.Identity
	}
	mock.lockInsert.RLock()
	calls = mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *followerRepoMock) Delete(ctx context.Context, target domain.Identity, follower domain.Identity) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("followerRepoMock.DeleteFunc: method is nil but followerRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Target   domain.Identity
		Follower domain.Identity
	}{
		Ctx:      ctx,
		Target:   target,
		Follower: follower,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, target, follower)
}

func (mock *followerRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	Target   domain.Identity
	Follower domain.Identity
} {
	var calls []struct {
		Ctx      context.Context
		Target   domain.Identity
		Follower domain.Identity
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *followerRepoMock) Exists(ctx context.Context, target domain.Identity, follower domain.Identity) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("followerRepoMock.ExistsFunc: method is nil but followerRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Target   domain.Identity
		Follower domain.Identity
	}{
		Ctx:      ctx,
		Target:   target,
		Follower: follower,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, target, follower)
}

func (mock *followerRepoMock) ExistsCalls() []struct {
	Ctx      context.Context
	Target   domain.Identity
	Follower domain.Identity
} {
	var calls []struct {
		Ctx      context.Context
		Target   domain.Identity
		Follower domain.Identity
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *followerRepoMock) ListFollowers(ctx context.Context, target domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error) {
	if mock.ListFollowersFunc == nil {
		panic("followerRepoMock.ListFollowersFunc: method is nil but followerRepo.ListFollowers was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.Identity
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Target: target,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListFollowers.Lock()
	mock.calls.ListFollowers = append(mock.calls.ListFollowers, callInfo)
	mock.lockListFollowers.Unlock()
	return mock.ListFollowersFunc(ctx, target, limit, offset)
}

func (mock *followerRepoMock) ListFollowersCalls() []struct {
	Ctx    context.Context
	Target domain.Identity
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Target domain.Identity
		Limit  int
		Offset int
	}
	mock.lockListFollowers.RLock()
	calls = mock.calls.ListFollowers
	mock.lockListFollowers.RUnlock()
	return calls
}

func (mock *followerRepoMock) ListFollowing(ctx context.Context, follower domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error) {
	if mock.ListFollowingFunc == nil {
		panic("followerRepoMock.ListFollowingFunc: method is nil but followerRepo.ListFollowing was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Follower domain.Identity
		Limit    int
		Offset   int
	}{
		Ctx:      ctx,
		Follower: follower,
		Limit:    limit,
		Offset:   offset,
	}
	mock.lockListFollowing.Lock()
	mock.calls.ListFollowing = append(mock.calls.ListFollowing, callInfo)
	mock.lockListFollowing.Unlock()
	return mock.ListFollowingFunc(ctx, follower, limit, offset)
}

func (mock *followerRepoMock) ListFollowingCalls() []struct {
	Ctx      context.Context
	Follower domain.Identity
	Limit    int
	Offset   int
} {
	var calls []struct {
		Ctx      context.Context
		Follower domain.Identity
		Limit    int
		Offset   int
	}
	mock.lockListFollowing.RLock()
	calls = mock.calls.ListFollowing
	mock.lockListFollowing.RUnlock()
	return calls
}
