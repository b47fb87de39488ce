package usecase

import (
	"context"

	"marketplace-chat/cache"
	"marketplace-chat/config/logger"
	"marketplace-chat/dto/res"
	"marketplace-chat/entity"
	"marketplace-chat/repository"
)

type PresenceReader interface {
	Get(ctx context.Context, userID string) (cache.Presence, error)
}

type UserUsecaseImpl struct {
	*repository.UserRepository
	Presence PresenceReader
	Log      *logger.AppLogger
}

func NewUserUsecase(userRepository *repository.UserRepository, presence PresenceReader, log *logger.AppLogger) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Presence: presence, Log: log}
}

func (uc *UserUsecaseImpl) GetUserByID(ctx context.Context, userID string) (res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().
		Str("userId", userID).
		Msg("Finding user by ID")

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		uc.Log.Http.Warning.Warn().
			Err(err).
			Str("userId", userID).
			Msg("Failed to find user")
		return res.UserResponse{}, err
	}

	uc.Log.Http.Info.Info().
		Str("userId", user.ID).
		Msg("Successfully retrieved user")
	return toUserResponse(*user), nil
}

func (uc *UserUsecaseImpl) GetAllUser(ctx context.Context) ([]res.UserResponse, error) {
	users, err := uc.UserRepository.FindAllUsers(ctx)
	if err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Msg("Failed to get all users")
		return nil, err
	}

	userResponses := make([]res.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, toUserResponse(user))
	}

	uc.Log.Http.Info.Info().
		Int("userCount", len(userResponses)).
		Msg("Successfully retrieved all users")
	return userResponses, nil
}

// GetPresence answers for existing users only.
func (uc *UserUsecaseImpl) GetPresence(ctx context.Context, userID string) (res.PresenceResponse, error) {
	if _, err := uc.UserRepository.FindByID(ctx, userID); err != nil {
		return res.PresenceResponse{}, err
	}

	presence, err := uc.Presence.Get(ctx, userID)
	if err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Str("userId", userID).
			Msg("Failed to read presence")
		return res.PresenceResponse{}, err
	}
	return res.PresenceResponse{UserID: userID, Online: presence.Online, LastSeen: presence.LastSeen}, nil
}

func toUserResponse(user entity.User) res.UserResponse {
	return res.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
