package res

// ErrorResponse is the body of every rejected request and of websocket error frames.
type ErrorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
}
