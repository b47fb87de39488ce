//go:generate go run go.uber.org/mock/mockgen -source=chat_usecase.go -destination=../mocks/mock_chat_usecase.go -package=mocks
package usecase

import (
	"context"

	"marketplace-chat/dto"
	"marketplace-chat/dto/req"
	"marketplace-chat/dto/res"
	"marketplace-chat/entity"
)

// ChatUsecase is the only entry point for sending and reading direct messages.
type ChatUsecase interface {
	SendMessage(ctx context.Context, senderID string, request *req.SendMessageRequest) (res.MessageResponse, error)
	GetChatHistory(ctx context.Context, myID, targetID string, page, pageSize int) ([]res.MessageResponse, error)
	GetUnreadTotal(ctx context.Context, myID string) (int64, error)
	GetUnreadWithTarget(ctx context.Context, myID, targetID string) (int64, error)
}

// UserDirectory resolves user ids. Missing users are reported as apperror.ErrUserNotFound.
type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type MessageStore interface {
	Append(ctx context.Context, message entity.Message) (entity.Message, error)
	QueryConversation(ctx context.Context, userA, userB string, limit, offset int) ([]entity.Message, error)
	MarkRead(ctx context.Context, fromUser, toUser string) (int64, error)
	CountUnread(ctx context.Context, toUser string) (int64, error)
	CountUnreadFrom(ctx context.Context, fromUser, toUser string) (int64, error)
}

// MessageDispatcher pushes a stored message to the recipient's live channel if one is open.
// It never reports failure.
type MessageDispatcher interface {
	Push(ctx context.Context, recipientID string, message res.MessageResponse)
}

type MessageEventPublisher interface {
	PublishMessageCreated(ctx context.Context, event dto.MessageCreatedEvent) error
}
