package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"marketplace-chat/apperror"
	"marketplace-chat/dto/res"
	"marketplace-chat/entity"
	"marketplace-chat/repository"
)

// ConversationQuery turns page requests into store reads and attaches sender display names.
type ConversationQuery struct {
	Store MessageStore
	Users UserDirectory
	*logrus.Logger
}

func NewConversationQuery(store MessageStore, users UserDirectory, logger *logrus.Logger) *ConversationQuery {
	return &ConversationQuery{Store: store, Users: users, Logger: logger}
}

// PageOffset converts a 1-based page into a store offset.
func PageOffset(page, pageSize int) (int, error) {
	if page < 1 {
		return 0, fmt.Errorf("%w: page must be at least 1", apperror.ErrInvalidRange)
	}
	if pageSize < 1 || pageSize > repository.MaxPageSize {
		return 0, fmt.Errorf("%w: pageSize must be between 1 and %d", apperror.ErrInvalidRange, repository.MaxPageSize)
	}
	return (page - 1) * pageSize, nil
}

// Page returns one page of the conversation between userA and userB, newest first.
func (q *ConversationQuery) Page(ctx context.Context, userA, userB string, page, pageSize int) ([]res.MessageResponse, error) {
	offset, err := PageOffset(page, pageSize)
	if err != nil {
		return nil, err
	}

	messages, err := q.Store.QueryConversation(ctx, userA, userB, pageSize, offset)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, 2)
	views := make([]res.MessageResponse, 0, len(messages))
	for _, message := range messages {
		name, ok := names[message.SenderID]
		if !ok {
			name = q.displayName(ctx, message.SenderID)
			names[message.SenderID] = name
		}
		views = append(views, ToMessageResponse(message, name))
	}
	return views, nil
}

// displayName never fails; a missing name renders as empty.
func (q *ConversationQuery) displayName(ctx context.Context, userID string) string {
	user, err := q.Users.FindByID(ctx, userID)
	if err != nil {
		q.Logger.WithError(err).Warnf("could not resolve display name for user %s", userID)
		return ""
	}
	return user.Name
}

func ToMessageResponse(message entity.Message, senderName string) res.MessageResponse {
	return res.MessageResponse{
		ID:         message.ID,
		SenderID:   message.SenderID,
		SenderName: senderName,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		SendTime:   message.SendTime,
		IsRead:     message.IsRead,
		Type:       message.Type,
	}
}
