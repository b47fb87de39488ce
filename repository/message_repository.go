package repository

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
	"marketplace-chat/apperror"
	"marketplace-chat/entity"
	"marketplace-chat/enum"
)

const (
	MaxContentLength = 500
	MaxPageSize      = 100
)

// MessageRepository is the durable message log. Every method issues exactly one statement.
type MessageRepository struct {
	Repository[entity.Message]
	Clock Clock
}

func NewMessageRepository(db *gorm.DB, clock Clock) *MessageRepository {
	if clock == nil {
		clock = NewMonotonicClock()
	}
	return &MessageRepository{Repository: Repository[entity.Message]{DB: db}, Clock: clock}
}

// ValidateMessage checks the parts of a message the store refuses to persist.
func ValidateMessage(senderID, receiverID, content string, messageType enum.MessageType) error {
	if senderID == "" || receiverID == "" {
		return fmt.Errorf("%w: sender and receiver are required", apperror.ErrValidation)
	}
	if senderID == receiverID {
		return apperror.ErrSelfMessage
	}
	if strings.TrimSpace(content) == "" || utf8.RuneCountInString(content) > MaxContentLength {
		return apperror.ErrContentLength
	}
	if messageType != enum.MessageTypeText && messageType != enum.MessageTypeImage {
		return fmt.Errorf("%w: unknown message type %d", apperror.ErrValidation, messageType)
	}
	return nil
}

// Append assigns id and send time. The message is only considered sent when this returns nil.
func (repository *MessageRepository) Append(ctx context.Context, message entity.Message) (entity.Message, error) {
	if err := ValidateMessage(message.SenderID, message.ReceiverID, message.Content, message.Type); err != nil {
		return entity.Message{}, err
	}

	message.ID = 0
	message.IsRead = false
	message.SendTime = repository.Clock.Now()

	result := repository.DB.WithContext(ctx).Create(&message)
	if result.Error != nil {
		return entity.Message{}, fmt.Errorf("%w: %v", apperror.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.Message{}, fmt.Errorf("%w: no rows inserted", apperror.ErrPersistence)
	}
	return message, nil
}

// QueryConversation returns both directions of the pair, newest first.
func (repository *MessageRepository) QueryConversation(ctx context.Context, userA, userB string, limit, offset int) ([]entity.Message, error) {
	if limit < 1 || limit > MaxPageSize || offset < 0 {
		return nil, fmt.Errorf("%w: limit %d offset %d", apperror.ErrInvalidRange, limit, offset)
	}

	var messages []entity.Message
	err := repository.DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		Order("send_time DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("%w: query conversation: %v", apperror.ErrPersistence, err)
	}
	return messages, nil
}

// MarkRead flips every unread message from fromUser to toUser and reports how many changed.
func (repository *MessageRepository) MarkRead(ctx context.Context, fromUser, toUser string) (int64, error) {
	result := repository.DB.WithContext(ctx).
		Model(&entity.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", fromUser, toUser, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: mark read: %v", apperror.ErrPersistence, result.Error)
	}
	return result.RowsAffected, nil
}

func (repository *MessageRepository) CountUnread(ctx context.Context, toUser string) (int64, error) {
	var count int64
	err := repository.DB.WithContext(ctx).
		Model(&entity.Message{}).
		Where("receiver_id = ? AND is_read = ?", toUser, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count unread: %v", apperror.ErrPersistence, err)
	}
	return count, nil
}

func (repository *MessageRepository) CountUnreadFrom(ctx context.Context, fromUser, toUser string) (int64, error) {
	var count int64
	err := repository.DB.WithContext(ctx).
		Model(&entity.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", fromUser, toUser, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count unread: %v", apperror.ErrPersistence, err)
	}
	return count, nil
}
