package res

type UnreadResponse struct {
	TargetID string `json:"targetId,omitempty"`
	Unread   int64  `json:"unread"`
}
