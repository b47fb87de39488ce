package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"marketplace-chat/dto/req"
	"marketplace-chat/dto/res"
	"marketplace-chat/middleware"
	"marketplace-chat/usecase"
)

const defaultPageSize = 20

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		ChatUsecase: chatUsecase,
		Logger:      logger,
	}
}

// SendMessage godoc
// @Summary Send a direct message
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body req.SendMessageRequest true "Message"
// @Success 200 {object} res.CommonResponse[res.MessageResponse]
// @Failure 400 {object} res.ErrorResponse
// @Failure 404 {object} res.ErrorResponse
// @Router /api/v1/messages [post]
func (handler *ChatHandler) SendMessage(c *fiber.Ctx) error {
	payload := new(req.SendMessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	message, err := handler.ChatUsecase.SendMessage(c.UserContext(), middleware.UserID(c), payload)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to send message",
		StatusCode: fiber.StatusOK,
		Data:       message,
	})
}

// GetChatHistory godoc
// @Summary Get the conversation with another user, newest first
// @Description Viewing any page marks every unread message from the target as read.
// @Tags Chat
// @Produce json
// @Param targetId path string true "Other user ID"
// @Param page query int false "Page, starting at 1"
// @Param pageSize query int false "Page size, 1 to 100"
// @Success 200 {object} res.CommonResponse[[]res.MessageResponse]
// @Router /api/v1/chats/{targetId}/messages [get]
func (handler *ChatHandler) GetChatHistory(c *fiber.Ctx) error {
	paging := req.HistoryRequest{Page: 1, PageSize: defaultPageSize}
	if err := c.QueryParser(&paging); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "page and pageSize must be numbers")
	}

	messages, err := handler.ChatUsecase.GetChatHistory(c.UserContext(), middleware.UserID(c), c.Params("targetId"), paging.Page, paging.PageSize)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to Get Chat History",
		StatusCode: fiber.StatusOK,
		Data:       messages,
	})
}

func (handler *ChatHandler) GetUnreadWithTarget(c *fiber.Ctx) error {
	targetID := c.Params("targetId")
	unread, err := handler.ChatUsecase.GetUnreadWithTarget(c.UserContext(), middleware.UserID(c), targetID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UnreadResponse]{
		Message:    "Successfully to Get Unread Count",
		StatusCode: fiber.StatusOK,
		Data:       res.UnreadResponse{TargetID: targetID, Unread: unread},
	})
}

func (handler *ChatHandler) GetUnreadTotal(c *fiber.Ctx) error {
	unread, err := handler.ChatUsecase.GetUnreadTotal(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UnreadResponse]{
		Message:    "Successfully to Get Unread Count",
		StatusCode: fiber.StatusOK,
		Data:       res.UnreadResponse{Unread: unread},
	})
}
