package helpers

import (
	"encoding/json"
	"net/http"
	"time"

	"eventmanager/internal/domain"
)

// EventResponse is the body for single-event successes. Message is set on
// mutating operations.
// swagger:model EventResponse
type EventResponse struct {
	Message string        `json:"message,omitempty"`
	Event   *domain.Event `json:"event"`
}

// EventsResponse is the body for list and search successes.
// swagger:model EventsResponse
type EventsResponse struct {
	Events []*domain.Event `json:"events"`
}

// MessageResponse is the body for successes carrying only an acknowledgment.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body for all failures. Fields carries per-field detail
// for validation failures and is omitted otherwise.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HealthResponse is the body for the health probe.
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes body as-is.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes an ErrorResponse with the given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
