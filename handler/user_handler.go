package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"marketplace-chat/dto/res"
	"marketplace-chat/middleware"
	"marketplace-chat/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetUserByToken(ctx *fiber.Ctx) error {
	userResponse, err := handler.UserUsecase.GetUserByID(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		handler.Logger.WithError(err).Warn("Failed to get user by token")
		return err
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Get User By ID",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	userResponses, err := handler.UserUsecase.GetAllUser(ctx.UserContext())
	if err != nil {
		return err
	}

	responses := res.CommonResponse[[]res.UserResponse]{
		Message:    "Successfully To Get All User",
		StatusCode: fiber.StatusOK,
		Data:       userResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *UserHandler) GetPresence(ctx *fiber.Ctx) error {
	presence, err := handler.UserUsecase.GetPresence(ctx.UserContext(), ctx.Params("userId"))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[res.PresenceResponse]{
		Message:    "Successfully To Get Presence",
		StatusCode: fiber.StatusOK,
		Data:       presence,
	})
}
