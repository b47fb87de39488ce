package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"marketplace-chat/handler"
	"marketplace-chat/metrics"
	"marketplace-chat/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ChatHandler
	SendLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)

	if rc.Metrics != nil {
		rc.App.Get("/metrics", rc.Metrics.Handler())
	}
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1", rc.Middleware.JWTProtected, rc.Middleware.ExtractUserID)

	app.Get("/auth/me", rc.UserHandler.GetUserByToken)

	app.Get("/users", rc.UserHandler.GetAllUsers)
	app.Get("/users/:userId/presence", rc.UserHandler.GetPresence)

	send := []fiber.Handler{rc.ChatHandler.SendMessage}
	if rc.SendLimiter != nil {
		send = append([]fiber.Handler{rc.SendLimiter.MiddlewareByKey(middleware.ByUser)}, send...)
	}
	app.Post("/messages", send...)

	app.Get("/chats/:targetId/messages", rc.ChatHandler.GetChatHistory)
	app.Get("/chats/:targetId/unread", rc.ChatHandler.GetUnreadWithTarget)
	app.Get("/unread", rc.ChatHandler.GetUnreadTotal)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", rc.Middleware.WebSocketAuth)
	rc.App.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
