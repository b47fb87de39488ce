package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"marketplace-chat/apperror"
	"marketplace-chat/dto/req"
	"marketplace-chat/dto/res"
	"marketplace-chat/entity"
	"marketplace-chat/repository"
	"marketplace-chat/security"
)

type AuthUsecaseImpl struct {
	*repository.AuthRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(authRepository *repository.AuthRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{AuthRepository: authRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Warn("invalid login request")
		return res.LoginResponse{}, fmt.Errorf("%w: %v", apperror.ErrValidation, err)
	}

	account, err := uc.AuthRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Logger.Warnf("login for unknown username %s", request.Username)
			return res.LoginResponse{}, apperror.ErrInvalidCredentials
		}
		uc.Logger.WithError(err).Errorf("failed to find username %s", request.Username)
		return res.LoginResponse{}, err
	}

	if !security.ComparePassword(account.Password, request.Password) {
		uc.Logger.Warnf("wrong password for username %s", request.Username)
		return res.LoginResponse{}, apperror.ErrInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(&account.User)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.LoginResponse{}, err
	}
	return res.LoginResponse{Token: token}, nil
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Warn("invalid register request")
		return res.RegisterResponse{}, fmt.Errorf("%w: %v", apperror.ErrValidation, err)
	}

	if _, err := uc.AuthRepository.FindByUsername(ctx, request.Username); err == nil {
		return res.RegisterResponse{}, fmt.Errorf("%w: username %s", apperror.ErrAlreadyExists, request.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.Logger.WithError(err).Error("failed to check username")
		return res.RegisterResponse{}, err
	}

	hashPassword, err := security.HashPassword(request.Password)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to hash password")
		return res.RegisterResponse{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	newAccount := &entity.Account{
		UserName: request.Username,
		Password: hashPassword,
		User: entity.User{
			Name:        request.Username,
			Email:       request.Email,
			PhoneNumber: request.PhoneNumber,
		},
	}
	if err := uc.AuthRepository.Save(ctx, trx, newAccount); err != nil {
		// email and phone number are unique too; the constraint catches those races
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			uc.Logger.WithError(err).Warnf("account %s collides with an existing user", request.Username)
			return res.RegisterResponse{}, fmt.Errorf("%w: username, email or phone number", apperror.ErrAlreadyExists)
		}
		uc.Logger.WithError(err).Errorf("failed to save account %s", request.Username)
		return res.RegisterResponse{}, err
	}
	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit account %s", request.Username)
		return res.RegisterResponse{}, err
	}

	uc.Logger.Infof("registered user %s", newAccount.User.ID)
	return res.RegisterResponse{
		ID:       newAccount.User.ID,
		Username: newAccount.UserName,
		Email:    newAccount.User.Email,
	}, nil
}
