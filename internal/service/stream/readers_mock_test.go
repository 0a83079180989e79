package stream

import (
	"context"
	"sync"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
)

var _ relationshipReader = &relationshipReaderMock{}

type relationshipReaderMock struct {
	StateFunc func(ctx context.Context, viewer domain.Identity, target domain.Identity) (domain.RelationshipState, error)

	calls struct {
		State []struct {
			Ctx    context.Context
			Viewer domain.Identity
			Target domain.Identity
		}
	}
	lockState sync.RWMutex
}

func (mock *relationshipReaderMock) State(ctx context.Context, viewer domain.Identity, target domain.Identity) (domain.RelationshipState, error) {
	if mock.StateFunc == nil {
		panic("relationshipReaderMock.StateFunc: method is nil but relationshipReader.State was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Viewer domain.Identity
		Target domain.Identity
	}{
		Ctx:    ctx,
		Viewer: viewer,
		Target: target,
	}
	mock.lockState.Lock()
	mock.calls.State = append(mock.calls.State, callInfo)
	mock.lockState.Unlock()
	return mock.StateFunc(ctx, viewer, target)
}

func (mock *relationshipReaderMock) StateCalls() []struct {
	Ctx    context.Context
	Viewer domain.Identity
	Target domain.Identity
} {
	var calls []struct {
		Ctx    context.Context
		Viewer domain.Identity
		Target domain.Identity
	}
	mock.lockState.RLock()
	calls = mock.calls.State
	mock.lockState.RUnlock()
	return calls
}

var _ profileReader = &profileReaderMock{}

type profileReaderMock struct {
	GetProfileFunc func(ctx context.Context, id domain.Identity) (*domain.Profile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
			Id  domain.Identity
		}
	}
	lockGetProfile sync.RWMutex
}

func (mock *profileReaderMock) GetProfile(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileReaderMock.GetProfileFunc: method is nil but profileReader.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  domain.Identity
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, id)
}

func (mock *profileReaderMock) GetProfileCalls() []struct {
	Ctx context.Context
	Id  domain.Identity
} {
	var calls []struct {
		Ctx context.Context
		Id  domain.Identity
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

var _ conversationReader = &conversationReaderMock{}

type conversationReaderMock struct {
	GetConversationFunc func(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error)

	calls struct {
		GetConversation []struct {
			Ctx    context.Context
			Id     string
			Viewer domain.Identity
		}
	}
	lockGetConversation sync.RWMutex
}

func (mock *conversationReaderMock) GetConversation(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error) {
	if mock.GetConversationFunc == nil {
		panic("conversationReaderMock.GetConversationFunc: method is nil but conversationReader.GetConversation was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     string
		Viewer domain.Identity
	}{
		Ctx:    ctx,
		Id:     id,
		Viewer: viewer,
	}
	mock.lockGetConversation.Lock()
	mock.calls.GetConversation = append(mock.calls.GetConversation, callInfo)
	mock.lockGetConversation.Unlock()
	return mock.GetConversationFunc(ctx, id, viewer)
}

func (mock *conversationReaderMock) GetConversationCalls() []struct {
	Ctx    context.Context
	Id     string
	Viewer domain.Identity
} {
	var calls []struct {
		Ctx    context.Context
		Id     string
		Viewer domain.Identity
	}
	mock.lockGetConversation.RLock()
	calls = mock.calls.GetConversation
	mock.lockGetConversation.RUnlock()
	return calls
}
