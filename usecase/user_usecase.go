package usecase

import (
	"context"

	"marketplace-chat/dto/res"
)

type UserUsecase interface {
	GetUserByID(ctx context.Context, userID string) (res.UserResponse, error)
	GetAllUser(ctx context.Context) ([]res.UserResponse, error)
	GetPresence(ctx context.Context, userID string) (res.PresenceResponse, error)
}
