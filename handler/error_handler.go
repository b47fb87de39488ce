package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
	"marketplace-chat/apperror"
	"marketplace-chat/dto/res"
)

const internalErrorMessage = "something went wrong, please try again later"

// StatusFor maps a usecase error to the status and message shown to the client.
// Server side failures never leak their cause.
func StatusFor(err error) (int, string) {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, apperror.ErrInvalidCredentials), errors.Is(err, apperror.ErrUnauthorized):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, apperror.ErrAlreadyExists):
		return fiber.StatusConflict, err.Error()
	default:
		return fiber.StatusInternalServerError, internalErrorMessage
	}
}

func NewErrorResponse(err error) res.ErrorResponse {
	status, message := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		message = internalErrorMessage
	}
	return res.ErrorResponse{
		Status:     utils.StatusMessage(status),
		StatusCode: status,
		Error:      message,
	}
}

func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		response := NewErrorResponse(err)
		if response.StatusCode >= fiber.StatusInternalServerError {
			log.WithError(err).Errorf("%s %s failed", c.Method(), c.Path())
		}
		return c.Status(response.StatusCode).JSON(response)
	}
}
