package usecase

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"marketplace-chat/apperror"
	"marketplace-chat/config/common"
	"marketplace-chat/dto/req"
	"marketplace-chat/repository"
	"marketplace-chat/repository/dbtest"
	"marketplace-chat/security"
)

func newAuthUsecase(t *testing.T) (AuthUsecase, *security.JWT) {
	t.Helper()
	db := dbtest.Open(t)
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	jwt := security.NewJWT(common.NewFromViper(v))
	return NewAuthUsecase(repository.NewAuthRepository(db), validator.New(), db, newTestLogger(), jwt), jwt
}

func TestAuthUsecase_RegisterThenLogin(t *testing.T) {
	uc, jwt := newAuthUsecase(t)
	ctx := context.Background()

	registered, err := uc.RegisterUser(ctx, &req.RegisterRequest{
		Username: "alice", PhoneNumber: "081234567", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.ID)
	require.Equal(t, "alice", registered.Username)

	login, err := uc.LoginUser(ctx, &req.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	userID, err := jwt.GetUserIdFromToken(login.Token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, userID)
}

func TestAuthUsecase_Failures(t *testing.T) {
	uc, _ := newAuthUsecase(t)
	ctx := context.Background()
	alice := &req.RegisterRequest{Username: "alice", PhoneNumber: "081234567", Email: "alice@example.com", Password: "secret123"}
	_, err := uc.RegisterUser(ctx, alice)
	require.NoError(t, err)

	t.Run("should reject a taken username", func(t *testing.T) {
		_, err := uc.RegisterUser(ctx, alice)
		require.ErrorIs(t, err, apperror.ErrAlreadyExists)
	})

	t.Run("should reject a taken email or phone number", func(t *testing.T) {
		_, err := uc.RegisterUser(ctx, &req.RegisterRequest{Username: "alice2", PhoneNumber: "089999999", Email: "alice@example.com", Password: "secret123"})
		require.ErrorIs(t, err, apperror.ErrAlreadyExists)

		_, err = uc.RegisterUser(ctx, &req.RegisterRequest{Username: "alice3", PhoneNumber: "081234567", Email: "alice3@example.com", Password: "secret123"})
		require.ErrorIs(t, err, apperror.ErrAlreadyExists)

		_, err = uc.LoginUser(ctx, &req.LoginRequest{Username: "alice2", Password: "secret123"})
		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("should reject an invalid email", func(t *testing.T) {
		_, err := uc.RegisterUser(ctx, &req.RegisterRequest{Username: "bob", PhoneNumber: "081234568", Email: "nope", Password: "secret123"})
		require.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		_, err := uc.LoginUser(ctx, &req.LoginRequest{Username: "alice", Password: "wrong-one"})
		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("should not reveal unknown usernames", func(t *testing.T) {
		_, err := uc.LoginUser(ctx, &req.LoginRequest{Username: "ghost", Password: "secret123"})
		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})
}
