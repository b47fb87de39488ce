package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"marketplace-chat/config/common"
	"marketplace-chat/config/logger"
	"marketplace-chat/dto/req"
	"marketplace-chat/dto/res"
	"marketplace-chat/metrics"
	"marketplace-chat/middleware"
	"marketplace-chat/realtime"
	"marketplace-chat/usecase"
)

const (
	maxFrameSize = 4096
	ackTimeout   = time.Second
)

// WebSocketHandler owns one live channel per connected user. Inbound frames are send
// requests; outbound frames are pushed messages, acks and errors.
type WebSocketHandler struct {
	usecase.ChatUsecase
	Hub     *realtime.Hub
	Config  common.RealtimeConfig
	Metrics *metrics.Metrics
	Log     *logger.AppLogger
}

func NewWebSocketHandler(chatUsecase usecase.ChatUsecase, hub *realtime.Hub, config common.RealtimeConfig, m *metrics.Metrics, log *logger.AppLogger) *WebSocketHandler {
	return &WebSocketHandler{ChatUsecase: chatUsecase, Hub: hub, Config: config, Metrics: m, Log: log}
}

func (handler *WebSocketHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals(middleware.UserIDLocal).(string)
	if userID == "" {
		_ = conn.Close()
		return
	}

	ctx := context.Background()
	client := realtime.NewClient(userID, uuid.NewString(), handler.Config.SendQueueSize)
	handler.Hub.Register(ctx, client)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if err := client.WritePump(conn, handler.Config.PingInterval, handler.Config.WriteDeadline); err != nil {
			handler.Log.WS.Warning.Warn().Err(err).Str("userId", userID).Msg("websocket write failed")
		}
		// unblocks the read loop when the session was replaced or the write side broke
		_ = conn.Close()
	}()

	readTimeout := 2 * handler.Config.PingInterval
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	limiter := rate.NewLimiter(rate.Limit(handler.Config.MessagesPerSecond), burstFor(handler.Config.MessagesPerSecond))
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				handler.Log.WS.Warning.Warn().Err(err).Str("userId", userID).Msg("websocket read failed")
			}
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		handler.handleFrame(ctx, client, userID, limiter, data)
	}

	handler.Hub.Unregister(ctx, client)
	<-writerDone
}

// handleFrame runs one inbound send request and answers on out with an ack or an error frame.
func (handler *WebSocketHandler) handleFrame(ctx context.Context, out realtime.Channel, userID string, limiter *rate.Limiter, data []byte) {
	handler.Log.WS.Stream.Info().Str("userId", userID).Int("bytes", len(data)).Msg("frame in")
	if !limiter.Allow() {
		handler.Metrics.Limited("ws")
		handler.reply(ctx, out, userID, fiber.NewError(fiber.StatusTooManyRequests, "rate limit exceeded"))
		return
	}

	payload := new(req.SendMessageRequest)
	if err := json.Unmarshal(data, payload); err != nil {
		handler.reply(ctx, out, userID, fiber.NewError(fiber.StatusBadRequest, "malformed frame"))
		return
	}

	message, err := handler.ChatUsecase.SendMessage(ctx, userID, payload)
	if err != nil {
		handler.reply(ctx, out, userID, err)
		return
	}

	handler.reply(ctx, out, userID, res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to send message",
		StatusCode: fiber.StatusOK,
		Data:       message,
	})
}

func (handler *WebSocketHandler) reply(ctx context.Context, out realtime.Channel, userID string, payload any) {
	status := fiber.StatusOK
	if err, ok := payload.(error); ok {
		errorFrame := NewErrorResponse(err)
		status = errorFrame.StatusCode
		payload = errorFrame
	}
	handler.Log.WS.Stream.Info().Str("userId", userID).Int("status", status).Msg("frame out")

	ctx, cancel := context.WithTimeout(ctx, ackTimeout)
	defer cancel()
	if err := out.Send(ctx, payload); err != nil {
		handler.Log.WS.Warning.Warn().Err(err).Msg("dropped websocket reply")
	}
}

func burstFor(perSecond float64) int {
	if perSecond < 1 {
		return 1
	}
	return int(perSecond)
}
