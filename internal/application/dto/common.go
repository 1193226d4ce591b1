package dto

import "time"

// TimestampLayout ISO-8601 en hora local del servidor, con microsegundos y sin zona.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp formatea t con TimestampLayout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Envelope campos comunes a toda respuesta exitosa.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewEnvelope construye un envelope exitoso con la hora actual.
func NewEnvelope(message string, now time.Time) Envelope {
	return Envelope{Success: true, Message: message, Timestamp: Timestamp(now)}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success            bool     `json:"success"`
	Message            string   `json:"message"`
	Error              string   `json:"error"`
	Details            string   `json:"details,omitempty"`
	Note               string   `json:"note,omitempty"`
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
	Timestamp          string   `json:"timestamp"`
}
