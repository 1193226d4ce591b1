package dto

// Valores de data_file_status.
const (
	DataFileOK    = "OK"
	DataFileError = "ERROR"
)

// HealthResponse GET /api/health.
type HealthResponse struct {
	Envelope
	Status             string   `json:"status"`
	Version            string   `json:"version"`
	DataFileStatus     string   `json:"data_file_status"`
	EndpointsAvailable []string `json:"endpoints_available"`
}

// RootResponse GET /.
type RootResponse struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Status      string            `json:"status"`
	Endpoints   map[string]string `json:"endpoints"`
	FrontendURL string            `json:"frontend_url,omitempty"`
	Timestamp   string            `json:"timestamp"`
}
