package enum

type MessageType int

const (
	MessageTypeText  MessageType = 0
	MessageTypeImage MessageType = 1
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeText:
		return "text"
	case MessageTypeImage:
		return "image"
	default:
		return "unknown"
	}
}
