package res

import (
	"time"

	"marketplace-chat/enum"
)

// MessageResponse is the client-facing view of a message. The same shape is returned to the
// sender, listed in history and pushed over the live channel.
type MessageResponse struct {
	ID         uint64           `json:"id"`
	SenderID   string           `json:"senderId"`
	SenderName string           `json:"senderName"`
	ReceiverID string           `json:"receiverId"`
	Content    string           `json:"content"`
	SendTime   time.Time        `json:"sendTime"`
	IsRead     bool             `json:"isRead"`
	Type       enum.MessageType `json:"type"`
}
