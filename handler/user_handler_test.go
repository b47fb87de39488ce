package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"marketplace-chat/apperror"
	"marketplace-chat/dto/req"
	"marketplace-chat/dto/res"
	"marketplace-chat/middleware"
)

type stubUserUsecase struct {
	presence map[string]res.PresenceResponse
}

func (s stubUserUsecase) GetUserByID(_ context.Context, userID string) (res.UserResponse, error) {
	return res.UserResponse{ID: userID, Name: strings.ToUpper(userID)}, nil
}

func (s stubUserUsecase) GetAllUser(context.Context) ([]res.UserResponse, error) {
	return []res.UserResponse{}, nil
}

func (s stubUserUsecase) GetPresence(_ context.Context, userID string) (res.PresenceResponse, error) {
	p, ok := s.presence[userID]
	if !ok {
		return res.PresenceResponse{}, apperror.ErrUserNotFound
	}
	return p, nil
}

type stubAuthUsecase struct {
	registerErr error
}

func (s stubAuthUsecase) RegisterUser(_ context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	if s.registerErr != nil {
		return res.RegisterResponse{}, s.registerErr
	}
	return res.RegisterResponse{ID: "u-1", Username: request.Username, Email: request.Email}, nil
}

func (s stubAuthUsecase) LoginUser(context.Context, *req.LoginRequest) (res.LoginResponse, error) {
	return res.LoginResponse{}, apperror.ErrInvalidCredentials
}

func TestUserHandler(t *testing.T) {
	lastSeen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	h := NewUserHandler(stubUserUsecase{presence: map[string]res.PresenceResponse{
		"bob": {UserID: "bob", Online: false, LastSeen: lastSeen},
	}}, newTestLogger())

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(newTestLogger())})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDLocal, "alice")
		return c.Next()
	})
	app.Get("/auth/me", h.GetUserByToken)
	app.Get("/users/:userId/presence", h.GetPresence)

	t.Run("should resolve the caller from the token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/auth/me", nil))
		require.NoError(t, err)
		body := decode[res.CommonResponse[res.UserResponse]](t, resp.Body)
		require.Equal(t, "alice", body.Data.ID)
	})

	t.Run("should report last seen for an offline user", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users/bob/presence", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decode[res.CommonResponse[res.PresenceResponse]](t, resp.Body)
		require.False(t, body.Data.Online)
		require.True(t, lastSeen.Equal(body.Data.LastSeen))
	})

	t.Run("should 404 presence of an unknown user", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/users/ghost/presence", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAuthHandler(t *testing.T) {
	newApp := func(uc stubAuthUsecase) *fiber.App {
		h := NewAuthHandler(uc, newTestLogger())
		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(newTestLogger())})
		app.Post("/auth/register", h.RegisterUser)
		app.Post("/auth/login", h.LoginUser)
		return app
	}
	post := func(app *fiber.App, path, body string) int {
		request := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(request)
		require.NoError(t, err)
		return resp.StatusCode
	}
	body := `{"username":"alice","password":"secret1","email":"alice@example.com","phoneNumber":"0812345678"}`

	require.Equal(t, fiber.StatusCreated, post(newApp(stubAuthUsecase{}), "/auth/register", body))
	require.Equal(t, fiber.StatusConflict, post(newApp(stubAuthUsecase{registerErr: apperror.ErrAlreadyExists}), "/auth/register", body))
	require.Equal(t, fiber.StatusUnauthorized, post(newApp(stubAuthUsecase{}), "/auth/login", `{"username":"alice","password":"nope"}`))
}
