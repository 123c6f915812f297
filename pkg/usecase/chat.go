package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/domain/model"
	"github.com/chatpad-dev/chatpad/pkg/domain/types"
	"github.com/chatpad-dev/chatpad/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SearchUserByEmail finds another account by exact email. Searching for
// yourself is rejected.
func (uc *UseCases) SearchUserByEmail(ctx context.Context, self types.UserID, email string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "email is required")
	}

	user, err := uc.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "no user with that email")
		}
		return nil, goerr.Wrap(err, "failed to search user by email")
	}

	if user.UID == self {
		return nil, goerr.Wrap(ErrInvalidInput, "cannot start a conversation with yourself")
	}
	return user, nil
}

// ListConversations returns the caller's conversations, newest activity
// first
func (uc *UseCases) ListConversations(ctx context.Context, uid types.UserID) ([]*model.Conversation, error) {
	convs, err := uc.repo.Conversation().ListByParticipant(ctx, uid)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conversations", goerr.V("uid", uid))
	}
	return convs, nil
}

// StartConversation returns the conversation between the caller and the
// other user, creating it on first contact. The pairing is idempotent
// and order independent.
func (uc *UseCases) StartConversation(ctx context.Context, self types.UserID, other types.UserID) (*model.Conversation, error) {
	if other == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "participant user ID is required")
	}
	if other == self {
		return nil, goerr.Wrap(ErrInvalidInput, "cannot start a conversation with yourself")
	}

	if _, err := uc.repo.User().Get(ctx, other); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "user not found", goerr.V("uid", other))
		}
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V("uid", other))
	}

	existing, err := uc.repo.Conversation().FindByParticipants(ctx, self, other)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to find conversation")
	}

	conv := model.NewConversation(self, other, uc.now())
	if err := uc.repo.Conversation().Create(ctx, conv); err != nil {
		return nil, goerr.Wrap(err, "failed to create conversation")
	}
	return conv, nil
}

// getOwnConversation loads the conversation and enforces membership
func (uc *UseCases) getOwnConversation(ctx context.Context, uid types.UserID, convID types.ConversationID) (*model.Conversation, error) {
	conv, err := uc.repo.Conversation().Get(ctx, convID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("id", convID))
		}
		return nil, goerr.Wrap(err, "failed to get conversation", goerr.V("id", convID))
	}
	if !conv.HasParticipant(uid) {
		return nil, goerr.Wrap(ErrAccessDenied, "not a participant of this conversation",
			goerr.V("id", convID), goerr.V("uid", uid))
	}
	return conv, nil
}

// ListMessages returns the conversation's messages, oldest first. Only
// participants may read.
func (uc *UseCases) ListMessages(ctx context.Context, uid types.UserID, convID types.ConversationID) ([]*model.Message, error) {
	if _, err := uc.getOwnConversation(ctx, uid, convID); err != nil {
		return nil, err
	}

	msgs, err := uc.repo.Message().List(ctx, convID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list messages", goerr.V("conversationID", convID))
	}
	return msgs, nil
}

// SendMessage appends a message to the conversation and refreshes the
// denormalized preview. The preview refresh is a separate write; its
// failure is logged and does not fail the send.
func (uc *UseCases) SendMessage(ctx context.Context, uid types.UserID, convID types.ConversationID, text string, aiSuggested bool) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "message text is required")
	}

	if _, err := uc.getOwnConversation(ctx, uid, convID); err != nil {
		return nil, err
	}

	msg := model.NewMessage(uid, text, aiSuggested, uc.now())
	if err := uc.repo.Message().Create(ctx, convID, msg); err != nil {
		return nil, goerr.Wrap(err, "failed to create message", goerr.V("conversationID", convID))
	}

	if err := uc.repo.Conversation().UpdatePreview(ctx, convID, model.Preview(text), msg.Timestamp); err != nil {
		logging.From(ctx).Warn("failed to update conversation preview",
			"conversation_id", convID,
			"error", err.Error())
	}

	return msg, nil
}
