package entity

import (
	"time"

	"marketplace-chat/enum"
)

// Message is immutable after insert except for IsRead, which only ever moves from false to true.
type Message struct {
	ID         uint64           `json:"id" gorm:"primaryKey;autoIncrement"`
	SenderID   string           `json:"senderId" gorm:"type:varchar(255);not null;index:idx_message_pair,priority:1"`
	ReceiverID string           `json:"receiverId" gorm:"type:varchar(255);not null;index:idx_message_pair,priority:2;index:idx_message_unread,priority:1"`
	Content    string           `json:"content" gorm:"type:varchar(500);not null"`
	Type       enum.MessageType `json:"type" gorm:"type:smallint;not null"`
	SendTime   time.Time        `json:"sendTime" gorm:"not null;index"`
	IsRead     bool             `json:"isRead" gorm:"not null;index:idx_message_unread,priority:2"`
}
