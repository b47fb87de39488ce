package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"marketplace-chat/apperror"
	"marketplace-chat/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: Repository[entity.User]{DB: db}}
}

// FindByID returns apperror.ErrUserNotFound for unknown and soft-deleted users.
func (repository *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := repository.FindById(ctx, &user, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUserNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

func (repository *UserRepository) FindAllUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := repository.FindAll(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
