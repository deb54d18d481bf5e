package api

// AlertResponse is returned by POST /api/v1/alerts.
type AlertResponse struct {
	InvestigationID string `json:"investigation_id"`
	Status          string `json:"status"`
	Message         string `json:"message"`
}

// CancelResponse is returned by POST /api/v1/investigations/:id/cancel.
type CancelResponse struct {
	InvestigationID string `json:"investigation_id"`
	Message         string `json:"message"`
}

// HealthCheck is the status of one component in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
