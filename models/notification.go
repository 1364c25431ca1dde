package models

// PushPayload is the unit of work queued for the notification worker.
type PushPayload struct {
	UserID string            `json:"userId"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
}
