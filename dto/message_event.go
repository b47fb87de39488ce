package dto

import (
	"time"

	"marketplace-chat/enum"
)

// MessageCreatedEvent is published to the message topic once a message is durably stored.
// ConversationKey is the same for both directions of a pair and is used as the partition key.
type MessageCreatedEvent struct {
	MessageID       uint64           `json:"messageId"`
	ConversationKey string           `json:"conversationKey"`
	SenderID        string           `json:"senderId"`
	SenderName      string           `json:"senderName"`
	ReceiverID      string           `json:"receiverId"`
	Content         string           `json:"content"`
	Type            enum.MessageType `json:"type"`
	SendTime        time.Time        `json:"sendTime"`
}

// ConversationKey orders the pair so that A->B and B->A map to the same key.
func ConversationKey(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return userA + ":" + userB
}
