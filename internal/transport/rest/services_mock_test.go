package rest

import (
	"context"
	"iter"
	"sync"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/conversation"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/notification"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/profile"
	"github.com/heartmarshall/ideamatcher-backend/internal/service/relationship"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	DeliverFunc             func(ctx context.Context, input notification.DeliverInput) (domain.DeliveryResult, error)
	RegisterTokenFunc       func(ctx context.Context, input notification.RegisterTokenInput) error
	UnregisterTokenFunc     func(ctx context.Context, owner domain.Identity, token string) error
	RecentNotificationsFunc func(ctx context.Context, id domain.Identity, limit int) ([]domain.Notification, error)

	calls struct {
		Deliver []struct {
			Ctx   context.Context
			Input notification.DeliverInput
		}
		RegisterToken []struct {
			Ctx   context.Context
			Input notification.RegisterTokenInput
		}
		UnregisterToken []struct {
			Ctx   context.Context
			Owner domain.Identity
			Token string
		}
		RecentNotifications []struct {
			Ctx   context.Context
			Id    domain.Identity
			Limit int
		}
	}
	lockDeliver             sync.RWMutex
	lockRegisterToken       sync.RWMutex
	lockUnregisterToken     sync.RWMutex
	lockRecentNotifications sync.RWMutex
}

func (mock *notificationServiceMock) Deliver(ctx context.Context, input notification.DeliverInput) (domain.DeliveryResult, error) {
	if mock.DeliverFunc == nil {
		panic("notificationServiceMock.DeliverFunc: method is nil but notificationService.Deliver was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notification.DeliverInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeliver.Lock()
	mock.calls.Deliver = append(mock.calls.Deliver, callInfo)
	mock.lockDeliver.Unlock()
	return mock.DeliverFunc(ctx, input)
}

func (mock *notificationServiceMock) DeliverCalls() []struct {
	Ctx   context.Context
	Input notification.DeliverInput
} {
	var calls []struct {
		Ctx   context.Context
		Input notification.DeliverInput
	}
	mock.lockDeliver.RLock()
	calls = mock.calls.Deliver
	mock.lockDeliver.RUnlock()
	return calls
}

func (mock *notificationServiceMock) RegisterToken(ctx context.Context, input notification.RegisterTokenInput) error {
	if mock.RegisterTokenFunc == nil {
		panic("notificationServiceMock.RegisterTokenFunc: method is nil but notificationService.RegisterToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notification.RegisterTokenInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegisterToken.Lock()
	mock.calls.RegisterToken = append(mock.calls.RegisterToken, callInfo)
	mock.lockRegisterToken.Unlock()
	return mock.RegisterTokenFunc(ctx, input)
}

func (mock *notificationServiceMock) RegisterTokenCalls() []struct {
	Ctx   context.Context
	Input notification.RegisterTokenInput
} {
	var calls []struct {
		Ctx   context.Context
		Input notification.RegisterTokenInput
	}
	mock.lockRegisterToken.RLock()
	calls = mock.calls.RegisterToken
	mock.lockRegisterToken.RUnlock()
	return calls
}

func (mock *notificationServiceMock) UnregisterToken(ctx context.Context, owner domain.Identity, token string) error {
	if mock.UnregisterTokenFunc == nil {
		panic("notificationServiceMock.UnregisterTokenFunc: method is nil but notificationService.UnregisterToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner domain.Identity
		Token string
	}{
		Ctx:   ctx,
		Owner: owner,
		Token: token,
	}
	mock.lockUnregisterToken.Lock()
	mock.calls.UnregisterToken = append(mock.calls.UnregisterToken, callInfo)
	mock.lockUnregisterToken.Unlock()
	return mock.UnregisterTokenFunc(ctx, owner, token)
}

func (mock *notificationServiceMock) UnregisterTokenCalls() []struct {
	Ctx   context.Context
	Owner domain.Identity
	Token string
} {
	var calls []struct {
		Ctx   context.Context
		Owner domain.Identity
		Token string
	}
	mock.lockUnregisterToken.RLock()
	calls = mock.calls.UnregisterToken
	mock.lockUnregisterToken.RUnlock()
	return calls
}

func (mock *notificationServiceMock) RecentNotifications(ctx context.Context, id domain.Identity, limit int) ([]domain.Notification, error) {
	if mock.RecentNotificationsFunc == nil {
		panic("notificationServiceMock.RecentNotificationsFunc: method is nil but notificationService.RecentNotifications was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    domain.Identity
		Limit int
	}{
		Ctx:   ctx,
		Id:    id,
		Limit: limit,
	}
	mock.lockRecentNotifications.Lock()
	mock.calls.RecentNotifications = append(mock.calls.RecentNotifications, callInfo)
	mock.lockRecentNotifications.Unlock()
	return mock.RecentNotificationsFunc(ctx, id, limit)
}

func (mock *notificationServiceMock) RecentNotificationsCalls() []struct {
	Ctx   context.Context
	Id    domain.Identity
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Id    domain.Identity
		Limit int
	}
	mock.lockRecentNotifications.RLock()
	calls = mock.calls.RecentNotifications
	mock.lockRecentNotifications.RUnlock()
	return calls
}

var _ relationshipService = &relationshipServiceMock{}

type relationshipServiceMock struct {
	TransitionFunc      func(ctx context.Context, input relationship.TransitionInput) (domain.RelationshipState, error)
	StateFunc           func(ctx context.Context, viewer domain.Identity, target domain.Identity) (domain.RelationshipState, error)
	ListConnectionsFunc func(ctx context.Context, input relationship.ListInput) ([]domain.ProfileSummary, error)

	calls struct {
		Transition []struct {
			Ctx   context.Context
			Input relationship.TransitionInput
		}
		State []struct {
			Ctx    context.Context
			Viewer domain.Identity
			Target domain.Identity
		}
		ListConnections []struct {
			Ctx   context.Context
			Input relationship.ListInput
		}
	}
	lockTransition      sync.RWMutex
	lockState           sync.RWMutex
	lockListConnections sync.RWMutex
}

func (mock *relationshipServiceMock) Transition(ctx context.Context, input relationship.TransitionInput) (domain.RelationshipState, error) {
	if mock.TransitionFunc == nil {
		panic("relationshipServiceMock.TransitionFunc: method is nil but relationshipService.Transition was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input relationship.TransitionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, input)
}

func (mock *relationshipServiceMock) TransitionCalls() []struct {
	Ctx   context.Context
	Input relationship.TransitionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input relationship.TransitionInput
	}
	mock.lockTransition.RLock()
	calls = mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}

func (mock *relationshipServiceMock) State(ctx context.Context, viewer domain.Identity, target domain.Identity) (domain.RelationshipState, error) {
	if mock.StateFunc == nil {
		panic("relationshipServiceMock.StateFunc: method is nil but relationshipService.State was just called")
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

func (mock *relationshipServiceMock) StateCalls() []struct {
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

func (mock *relationshipServiceMock) ListConnections(ctx context.Context, input relationship.ListInput) ([]domain.ProfileSummary, error) {
	if mock.ListConnectionsFunc == nil {
		panic("relationshipServiceMock.ListConnectionsFunc: method is nil but relationshipService.ListConnections was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input relationship.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListConnections.Lock()
	mock.calls.ListConnections = append(mock.calls.ListConnections, callInfo)
	mock.lockListConnections.Unlock()
	return mock.ListConnectionsFunc(ctx, input)
}

func (mock *relationshipServiceMock) ListConnectionsCalls() []struct {
	Ctx   context.Context
	Input relationship.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input relationship.ListInput
	}
	mock.lockListConnections.RLock()
	calls = mock.calls.ListConnections
	mock.lockListConnections.RUnlock()
	return calls
}

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc         func(ctx context.Context, id domain.Identity) (*domain.Profile, error)
	GetProfileByHandleFunc func(ctx context.Context, handle string) (*domain.Profile, error)
	UpsertProfileFunc      func(ctx context.Context, viewer domain.Identity, input profile.UpsertInput) (*domain.Profile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
			Id  domain.Identity
		}
		GetProfileByHandle []struct {
			Ctx    context.Context
			Handle string
		}
		UpsertProfile []struct {
			Ctx    context.Context
			Viewer domain.Identity
			Input  profile.UpsertInput
		}
	}
	lockGetProfile         sync.RWMutex
	lockGetProfileByHandle sync.RWMutex
	lockUpsertProfile      sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context, id domain.Identity) (*domain.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
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

func (mock *profileServiceMock) GetProfileCalls() []struct {
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

func (mock *profileServiceMock) GetProfileByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	if mock.GetProfileByHandleFunc == nil {
		panic("profileServiceMock.GetProfileByHandleFunc: method is nil but profileService.GetProfileByHandle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Handle string
	}{
		Ctx:    ctx,
		Handle: handle,
	}
	mock.lockGetProfileByHandle.Lock()
	mock.calls.GetProfileByHandle = append(mock.calls.GetProfileByHandle, callInfo)
	mock.lockGetProfileByHandle.Unlock()
	return mock.GetProfileByHandleFunc(ctx, handle)
}

func (mock *profileServiceMock) GetProfileByHandleCalls() []struct {
	Ctx    context.Context
	Handle string
} {
	var calls []struct {
		Ctx    context.Context
		Handle string
	}
	mock.lockGetProfileByHandle.RLock()
	calls = mock.calls.GetProfileByHandle
	mock.lockGetProfileByHandle.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpsertProfile(ctx context.Context, viewer domain.Identity, input profile.UpsertInput) (*domain.Profile, error) {
	if mock.UpsertProfileFunc == nil {
		panic("profileServiceMock.UpsertProfileFunc: method is nil but profileService.UpsertProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Viewer domain.Identity
		Input  profile.UpsertInput
	}{
		Ctx:    ctx,
		Viewer: viewer,
		Input:  input,
	}
	mock.lockUpsertProfile.Lock()
	mock.calls.UpsertProfile = append(mock.calls.UpsertProfile, callInfo)
	mock.lockUpsertProfile.Unlock()
	return mock.UpsertProfileFunc(ctx, viewer, input)
}

func (mock *profileServiceMock) UpsertProfileCalls() []struct {
	Ctx    context.Context
	Viewer domain.Identity
	Input  profile.UpsertInput
} {
	var calls []struct {
		Ctx    context.Context
		Viewer domain.Identity
		Input  profile.UpsertInput
	}
	mock.lockUpsertProfile.RLock()
	calls = mock.calls.UpsertProfile
	mock.lockUpsertProfile.RUnlock()
	return calls
}

var _ followService = &followServiceMock{}

type followServiceMock struct {
	FollowFunc        func(ctx context.Context, viewer domain.Identity, target domain.Identity) (bool, error)
	UnfollowFunc      func(ctx context.Context, viewer domain.Identity, target domain.Identity) (bool, error)
	IsFollowingFunc   func(ctx context.Context, viewer domain.Identity, target domain.Identity) (bool, error)
	ListFollowersFunc func(ctx context.Context, id domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error)
	ListFollowingFunc func(ctx context.Context, id domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error)

	calls struct {
		Follow []struct {
			Ctx    context.Context
			Viewer domain.Identity
			Target domain.Identity
		}
		Unfollow []struct {
			Ctx    context.Context
			Viewer domain.Identity
			Target domain.Identity
		}
		IsFollowing []struct {
			Ctx    context.Context
			Viewer domain.Identity
			Target domain.Identity
		}
		ListFollowers []struct {
			Ctx    context.Context
			Id     domain.Identity
			Limit  int
			Offset int
		}
		ListFollowing []struct {
			Ctx    context.Context
			Id     domain.Identity
			Limit  int
			Offset int
		}
	}
	lockFollow        sync.RWMutex
	lockUnfollow      sync.RWMutex
	lockIsFollowing   sync.RWMutex
	lockListFollowers sync.RWMutex
	lockListFollowing sync.RWMutex
}

func (mock *followServiceMock) Follow(ctx context.Context, viewer domain.Identity, target domain.Identity) (bool, error) {
	if mock.FollowFunc == nil {
		panic("followServiceMock.FollowFunc: method is nil but followService.Follow was just called")
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
	mock.lockFollow.Lock()
	mock.calls.Follow = append(mock.calls.Follow, callInfo)
	mock.lockFollow.Unlock()
	return mock.FollowFunc(ctx, viewer, target)
}

func (mock *followServiceMock) FollowCalls() []struct {
	Ctx    context.Context
	Viewer domain.Identity
	Target domain.Identity
} {
	var calls []struct {
		Ctx    context.Context
		Viewer domain.Identity
		Target domain.Identity
	}
	mock.lockFollow.RLock()
	calls = mock.calls.Follow
	mock.lockFollow.RUnlock()
	return calls
}

func (mock *followServiceMock) Unfollow(ctx context.Context, viewer domain.Identity, target domain.Identity) (bool, error) {
	if mock.UnfollowFunc == nil {
		panic("followServiceMock.UnfollowFunc: method is nil but followService.Unfollow was just called")
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
	mock.lockUnfollow.Lock()
	mock.calls.Unfollow = append(mock.calls.Unfollow, callInfo)
	mock.lockUnfollow.Unlock()
	return mock.UnfollowFunc(ctx, viewer, target)
}

func (mock *followServiceMock) UnfollowCalls() []struct {
	Ctx    context.Context
	Viewer domain.Identity
	Target domain.Identity
} {
	var calls []struct {
		Ctx    context.Context
		Viewer domain.Identity
		Target domain.Identity
	}
	mock.lockUnfollow.RLock()
	calls = mock.calls.Unfollow
	mock.lockUnfollow.RUnlock()
	return calls
}

func (mock *followServiceMock) IsFollowing(ctx context.Context, viewer domain.Identity, target domain.Identity) (bool, error) {
	if mock.IsFollowingFunc == nil {
		panic("followServiceMock.IsFollowingFunc: method is nil but followService.IsFollowing was just called")
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
	mock.lockIsFollowing.Lock()
	mock.calls.IsFollowing = append(mock.calls.IsFollowing, callInfo)
	mock.lockIsFollowing.Unlock()
	return mock.IsFollowingFunc(ctx, viewer, target)
}

func (mock *followServiceMock) IsFollowingCalls() []struct {
	Ctx    context.Context
	Viewer domain.Identity
	Target domain.Identity
} {
	var calls []struct {
		Ctx    context.Context
		Viewer domain.Identity
		Target domain.Identity
	}
	mock.lockIsFollowing.RLock()
	calls = mock.calls.IsFollowing
	mock.lockIsFollowing.RUnlock()
	return calls
}

func (mock *followServiceMock) ListFollowers(ctx context.Context, id domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error) {
	if mock.ListFollowersFunc == nil {
		panic("followServiceMock.ListFollowersFunc: method is nil but followService.ListFollowers was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     domain.Identity
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Id:     id,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListFollowers.Lock()
	mock.calls.ListFollowers = append(mock.calls.ListFollowers, callInfo)
	mock.lockListFollowers.Unlock()
	return mock.ListFollowersFunc(ctx, id, limit, offset)
}

func (mock *followServiceMock) ListFollowersCalls() []struct {
	Ctx    context.Context
	Id     domain.Identity
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Id     domain.Identity
		Limit  int
		Offset int
	}
	mock.lockListFollowers.RLock()
	calls = mock.calls.ListFollowers
	mock.lockListFollowers.RUnlock()
	return calls
}

func (mock *followServiceMock) ListFollowing(ctx context.Context, id domain.Identity, limit int, offset int) ([]domain.ProfileSummary, error) {
	if mock.ListFollowingFunc == nil {
		panic("followServiceMock.ListFollowingFunc: method is nil but followService.ListFollowing was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     domain.Identity
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Id:     id,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListFollowing.Lock()
	mock.calls.ListFollowing = append(mock.calls.ListFollowing, callInfo)
	mock.lockListFollowing.Unlock()
	return mock.ListFollowingFunc(ctx, id, limit, offset)
}

func (mock *followServiceMock) ListFollowingCalls() []struct {
	Ctx    context.Context
	Id     domain.Identity
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Id     domain.Identity
		Limit  int
		Offset int
	}
	mock.lockListFollowing.RLock()
	calls = mock.calls.ListFollowing
	mock.lockListFollowing.RUnlock()
	return calls
}

var _ conversationService = &conversationServiceMock{}

type conversationServiceMock struct {
	SendMessageFunc       func(ctx context.Context, input conversation.SendMessageInput) (domain.Message, error)
	SendMessageToFunc     func(ctx context.Context, sender domain.Identity, peer domain.Identity, content string, msgType domain.MessageType) (domain.Message, error)
	OpenConversationFunc  func(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error)
	ListMessagesFunc      func(ctx context.Context, input conversation.ListMessagesInput) ([]domain.Message, error)
	ListConversationsFunc func(ctx context.Context, viewer domain.Identity, limit int, offset int) ([]domain.ConversationSummary, error)
	MessagesFunc          func(ctx context.Context, id string, viewer domain.Identity, pageSize int) iter.Seq2[domain.Message, error]

	calls struct {
		SendMessage []struct {
			Ctx   context.Context
			Input conversation.SendMessageInput
		}
		SendMessageTo []struct {
			Ctx     context.Context
			Sender  domain.Identity
			Peer    domain.Identity
			Content string
			MsgType domain.MessageType
		}
		OpenConversation []struct {
			Ctx    context.Context
			Id     string
			Viewer domain.Identity
		}
		ListMessages []struct {
			Ctx   context.Context
			Input conversation.ListMessagesInput
		}
		ListConversations []struct {
			Ctx    context.Context
			Viewer domain.Identity
			Limit  int
			Offset int
		}
		Messages []struct {
			Ctx      context.Context
			Id       string
			Viewer   domain.Identity
			PageSize int
		}
	}
	lockSendMessage       sync.RWMutex
	lockSendMessageTo     sync.RWMutex
	lockOpenConversation  sync.RWMutex
	lockListMessages      sync.RWMutex
	lockListConversations sync.RWMutex
	lockMessages          sync.RWMutex
}

func (mock *conversationServiceMock) SendMessage(ctx context.Context, input conversation.SendMessageInput) (domain.Message, error) {
	if mock.SendMessageFunc == nil {
		panic("conversationServiceMock.SendMessageFunc: method is nil but conversationService.SendMessage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input conversation.SendMessageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSendMessage.Lock()
	mock.calls.SendMessage = append(mock.calls.SendMessage, callInfo)
	mock.lockSendMessage.Unlock()
	return mock.SendMessageFunc(ctx, input)
}

func (mock *conversationServiceMock) SendMessageCalls() []struct {
	Ctx   context.Context
	Input conversation.SendMessageInput
} {
	var calls []struct {
		Ctx   context.Context
		Input conversation.SendMessageInput
	}
	mock.lockSendMessage.RLock()
	calls = mock.calls.SendMessage
	mock.lockSendMessage.RUnlock()
	return calls
}

func (mock *conversationServiceMock) SendMessageTo(ctx context.Context, sender domain.Identity, peer domain.Identity, content string, msgType domain.MessageType) (domain.Message, error) {
	if mock.SendMessageToFunc == nil {
		panic("conversationServiceMock.SendMessageToFunc: method is nil but conversationService.SendMessageTo was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Sender  domain.Identity
		Peer    domain.Identity
		Content string
		MsgType domain.MessageType
	}{
		Ctx:     ctx,
		Sender:  sender,
		Peer:    peer,
		Content: content,
		MsgType: msgType,
	}
	mock.lockSendMessageTo.Lock()
	mock.calls.SendMessageTo = append(mock.calls.SendMessageTo, callInfo)
	mock.lockSendMessageTo.Unlock()
	return mock.SendMessageToFunc(ctx, sender, peer, content, msgType)
}

func (mock *conversationServiceMock) SendMessageToCalls() []struct {
	Ctx     context.Context
	Sender  domain.Identity
	Peer    domain.Identity
	Content string
	MsgType domain.MessageType
} {
	var calls []struct {
		Ctx     context.Context
		Sender  domain.Identity
		Peer    domain.Identity
		Content string
		MsgType domain.MessageType
	}
	mock.lockSendMessageTo.RLock()
	calls = mock.calls.SendMessageTo
	mock.lockSendMessageTo.RUnlock()
	return calls
}

func (mock *conversationServiceMock) OpenConversation(ctx context.Context, id string, viewer domain.Identity) (*domain.Conversation, error) {
	if mock.OpenConversationFunc == nil {
		panic("conversationServiceMock.OpenConversationFunc: method is nil but conversationService.OpenConversation was just called")
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
	mock.lockOpenConversation.Lock()
	mock.calls.OpenConversation = append(mock.calls.OpenConversation, callInfo)
	mock.lockOpenConversation.Unlock()
	return mock.OpenConversationFunc(ctx, id, viewer)
}

func (mock *conversationServiceMock) OpenConversationCalls() []struct {
	Ctx    context.Context
	Id     string
	Viewer domain.Identity
} {
	var calls []struct {
		Ctx    context.Context
		Id     string
		Viewer domain.Identity
	}
	mock.lockOpenConversation.RLock()
	calls = mock.calls.OpenConversation
	mock.lockOpenConversation.RUnlock()
	return calls
}

func (mock *conversationServiceMock) ListMessages(ctx context.Context, input conversation.ListMessagesInput) ([]domain.Message, error) {
	if mock.ListMessagesFunc == nil {
		panic("conversationServiceMock.ListMessagesFunc: method is nil but conversationService.ListMessages was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input conversation.ListMessagesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListMessages.Lock()
	mock.calls.ListMessages = append(mock.calls.ListMessages, callInfo)
	mock.lockListMessages.Unlock()
	return mock.ListMessagesFunc(ctx, input)
}

func (mock *conversationServiceMock) ListMessagesCalls() []struct {
	Ctx   context.Context
	Input conversation.ListMessagesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input conversation.ListMessagesInput
	}
	mock.lockListMessages.RLock()
	calls = mock.calls.ListMessages
	mock.lockListMessages.RUnlock()
	return calls
}

func (mock *conversationServiceMock) ListConversations(ctx context.Context, viewer domain.Identity, limit int, offset int) ([]domain.ConversationSummary, error) {
	if mock.ListConversationsFunc == nil {
		panic("conversationServiceMock.ListConversationsFunc: method is nil but conversationService.ListConversations was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Viewer domain.Identity
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Viewer: viewer,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListConversations.Lock()
	mock.calls.ListConversations = append(mock.calls.ListConversations, callInfo)
	mock.lockListConversations.Unlock()
	return mock.ListConversationsFunc(ctx, viewer, limit, offset)
}

func (mock *conversationServiceMock) ListConversationsCalls() []struct {
	Ctx    context.Context
	Viewer domain.Identity
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Viewer domain.Identity
		Limit  int
		Offset int
	}
	mock.lockListConversations.RLock()
	calls = mock.calls.ListConversations
	mock.lockListConversations.RUnlock()
	return calls
}

func (mock *conversationServiceMock) Messages(ctx context.Context, id string, viewer domain.Identity, pageSize int) iter.Seq2[domain.Message, error] {
	if mock.MessagesFunc == nil {
		panic("conversationServiceMock.MessagesFunc: method is nil but conversationService.Messages was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       string
		Viewer   domain.Identity
		PageSize int
	}{
		Ctx:      ctx,
		Id:       id,
		Viewer:   viewer,
		PageSize: pageSize,
	}
	mock.lockMessages.Lock()
	mock.calls.Messages = append(mock.calls.Messages, callInfo)
	mock.lockMessages.Unlock()
	return mock.MessagesFunc(ctx, id, viewer, pageSize)
}

func (mock *conversationServiceMock) MessagesCalls() []struct {
	Ctx      context.Context
	Id       string
	Viewer   domain.Identity
	PageSize int
} {
	var calls []struct {
		Ctx      context.Context
		Id       string
		Viewer   domain.Identity
		PageSize int
	}
	mock.lockMessages.RLock()
	calls = mock.calls.Messages
	mock.lockMessages.RUnlock()
	return calls
}
