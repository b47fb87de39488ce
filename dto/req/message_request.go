package req

import "marketplace-chat/enum"

// SendMessageRequest is the body of POST /messages and the frame clients write on the websocket.
// Type is optional and defaults to text.
type SendMessageRequest struct {
	ReceiverID string            `json:"receiverId" validate:"required"`
	Content    string            `json:"content" validate:"required,max=500"`
	Type       *enum.MessageType `json:"type,omitempty" validate:"omitempty,oneof=0 1"`
}

type HistoryRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}
