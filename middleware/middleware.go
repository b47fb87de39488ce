package middleware

import (
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"marketplace-chat/dto/res"
	"marketplace-chat/security"
)

const (
	jwtContextKey = "jwt"
	// UserIDLocal is the locals key holding the authenticated user id, on fiber and websocket contexts alike.
	UserIDLocal = "user_id"
)

type Middleware struct {
	*security.JWT
	Log *logrus.Logger

	jwtHandler fiber.Handler
}

func NewMiddleware(JWT *security.JWT, logger *logrus.Logger) *Middleware {
	m := &Middleware{JWT: JWT, Log: logger}
	m.jwtHandler = jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS512, Key: JWT.Secret()},
		ContextKey: jwtContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			m.Log.WithError(err).Warn("Failed to validate JWT")
			return unauthorized(c, "Token is not valid")
		},
	})
	return m
}

// JWTProtected rejects requests without a valid bearer token.
func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	return middleware.jwtHandler(c)
}

// ExtractUserID copies the user id claim of the verified token into the request locals.
func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	token, ok := c.Locals(jwtContextKey).(*jwt.Token)
	if !ok {
		return unauthorized(c, "Missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthorized(c, "Failed to extract user ID from token")
	}
	userID, err := security.UserIDFromClaims(claims)
	if err != nil {
		middleware.Log.WithError(err).Warn("Failed to extract user ID from token")
		return unauthorized(c, "Failed to extract user ID from token")
	}

	c.Locals(UserIDLocal, userID)
	return c.Next()
}

// WebSocketAuth guards the upgrade. Browsers cannot set headers on a websocket handshake,
// so the token may also come as the token query parameter.
func (middleware *Middleware) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	}
	if token == "" {
		return unauthorized(c, "Missing token")
	}

	userID, err := middleware.JWT.GetUserIdFromToken(token)
	if err != nil {
		middleware.Log.WithError(err).Warn("Rejected websocket upgrade")
		return unauthorized(c, "Token is not valid")
	}

	c.Locals(UserIDLocal, userID)
	return c.Next()
}

// UserID returns the authenticated user of the request, or "" when the route is public.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDLocal).(string)
	return userID
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
		Status:     fiber.ErrUnauthorized.Message,
		StatusCode: fiber.StatusUnauthorized,
		Error:      message,
	})
}
