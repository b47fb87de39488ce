package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"marketplace-chat/apperror"
	"marketplace-chat/dto"
	"marketplace-chat/dto/req"
	"marketplace-chat/dto/res"
	"marketplace-chat/entity"
	"marketplace-chat/enum"
	"marketplace-chat/metrics"
	"marketplace-chat/repository"
)

type ChatUsecaseImpl struct {
	Store      MessageStore
	Users      UserDirectory
	Query      *ConversationQuery
	Dispatcher MessageDispatcher
	// Events is optional; nil disables message.created publishing.
	Events  MessageEventPublisher
	Metrics *metrics.Metrics
	*validator.Validate
	*logrus.Logger

	async func(func())
}

func NewChatUsecase(
	store MessageStore,
	users UserDirectory,
	dispatcher MessageDispatcher,
	events MessageEventPublisher,
	validate *validator.Validate,
	m *metrics.Metrics,
	logger *logrus.Logger,
) ChatUsecase {
	return &ChatUsecaseImpl{
		Store:      store,
		Users:      users,
		Query:      NewConversationQuery(store, users, logger),
		Dispatcher: dispatcher,
		Events:     events,
		Metrics:    m,
		Validate:   validate,
		Logger:     logger,
		async:      func(f func()) { go f() },
	}
}

func (uc *ChatUsecaseImpl) SendMessage(ctx context.Context, senderID string, request *req.SendMessageRequest) (res.MessageResponse, error) {
	if request == nil {
		return res.MessageResponse{}, fmt.Errorf("%w: empty request", apperror.ErrValidation)
	}
	if err := uc.validateRequest(request); err != nil {
		uc.Logger.WithError(err).Warn("rejected send request")
		return res.MessageResponse{}, err
	}

	messageType := enum.MessageTypeText
	if request.Type != nil {
		messageType = *request.Type
	}

	// self message, blank content and unknown types fail here before any lookup
	if err := repository.ValidateMessage(senderID, request.ReceiverID, request.Content, messageType); err != nil {
		uc.Logger.WithError(err).Warnf("rejected send from %s to %s", senderID, request.ReceiverID)
		return res.MessageResponse{}, err
	}

	if _, err := uc.Users.FindByID(ctx, request.ReceiverID); err != nil {
		return res.MessageResponse{}, uc.lookupError(err, apperror.ErrReceiverNotFound, request.ReceiverID)
	}
	sender, err := uc.Users.FindByID(ctx, senderID)
	if err != nil {
		return res.MessageResponse{}, uc.lookupError(err, apperror.ErrSenderNotFound, senderID)
	}

	stored, err := uc.Store.Append(ctx, entity.Message{
		SenderID:   senderID,
		ReceiverID: request.ReceiverID,
		Content:    request.Content,
		Type:       messageType,
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to persist message from %s to %s", senderID, request.ReceiverID)
		return res.MessageResponse{}, err
	}
	uc.Metrics.MessageSent(stored.Type.String())

	view := ToMessageResponse(stored, sender.Name)
	uc.async(func() { uc.deliver(view) })

	uc.Logger.Infof("message %d stored from %s to %s", stored.ID, senderID, request.ReceiverID)
	return view, nil
}

// deliver runs after the sender has been answered, so it uses its own context.
func (uc *ChatUsecaseImpl) deliver(view res.MessageResponse) {
	ctx := context.Background()
	uc.Dispatcher.Push(ctx, view.ReceiverID, view)

	if uc.Events == nil {
		return
	}
	event := dto.MessageCreatedEvent{
		MessageID:       view.ID,
		ConversationKey: dto.ConversationKey(view.SenderID, view.ReceiverID),
		SenderID:        view.SenderID,
		SenderName:      view.SenderName,
		ReceiverID:      view.ReceiverID,
		Content:         view.Content,
		Type:            view.Type,
		SendTime:        view.SendTime,
	}
	if err := uc.Events.PublishMessageCreated(ctx, event); err != nil {
		uc.Logger.WithError(err).Warnf("message %d stored but event was not published", view.ID)
	}
}

func (uc *ChatUsecaseImpl) GetChatHistory(ctx context.Context, myID, targetID string, page, pageSize int) ([]res.MessageResponse, error) {
	if _, err := PageOffset(page, pageSize); err != nil {
		return nil, err
	}
	if myID == "" || targetID == "" {
		return nil, fmt.Errorf("%w: user and target are required", apperror.ErrValidation)
	}

	if _, err := uc.Users.FindByID(ctx, targetID); err != nil {
		return nil, uc.lookupError(err, apperror.ErrTargetNotFound, targetID)
	}

	views, err := uc.Query.Page(ctx, myID, targetID, page, pageSize)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to load history between %s and %s", myID, targetID)
		return nil, err
	}

	// viewing any page counts as having seen the whole conversation
	marked, err := uc.Store.MarkRead(ctx, targetID, myID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to mark messages from %s to %s as read", targetID, myID)
		if !errors.Is(err, apperror.ErrPersistence) {
			err = fmt.Errorf("%w: mark read: %v", apperror.ErrPersistence, err)
		}
		return nil, err
	}
	if marked > 0 {
		uc.Logger.Debugf("marked %d messages from %s to %s as read", marked, targetID, myID)
	}
	return views, nil
}

func (uc *ChatUsecaseImpl) GetUnreadTotal(ctx context.Context, myID string) (int64, error) {
	if myID == "" {
		return 0, fmt.Errorf("%w: user is required", apperror.ErrValidation)
	}
	count, err := uc.Store.CountUnread(ctx, myID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to count unread messages for %s", myID)
		return 0, err
	}
	return count, nil
}

func (uc *ChatUsecaseImpl) GetUnreadWithTarget(ctx context.Context, myID, targetID string) (int64, error) {
	if myID == "" || targetID == "" {
		return 0, fmt.Errorf("%w: user and target are required", apperror.ErrValidation)
	}
	count, err := uc.Store.CountUnreadFrom(ctx, targetID, myID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to count unread messages from %s to %s", targetID, myID)
		return 0, err
	}
	return count, nil
}

func (uc *ChatUsecaseImpl) validateRequest(request *req.SendMessageRequest) error {
	err := uc.Validate.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", apperror.ErrValidation, err)
	}
	for _, fe := range fieldErrors {
		if fe.StructField() == "Content" {
			return apperror.ErrContentLength
		}
	}
	fields := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", apperror.ErrValidation, strings.Join(fields, ", "))
}

// lookupError keeps directory faults distinct from a missing user.
func (uc *ChatUsecaseImpl) lookupError(err, notFound error, userID string) error {
	if errors.Is(err, apperror.ErrNotFound) {
		uc.Logger.Warnf("%v: %s", notFound, userID)
		return notFound
	}
	uc.Logger.WithError(err).Errorf("failed to look up user %s", userID)
	return err
}
