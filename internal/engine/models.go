package engine

// REST API models. Field casing follows the original frontend contract:
// flattened records use lower-cased field names, model payloads snake_case.

// Status represents the status of an operation.
type Status string

const (
	StatusOK      Status = "ok"
	StatusHealthy Status = "healthy"
	StatusError   Status = "error"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Status  Status `json:"status"`
}

// MessageResponse is the root endpoint's greeting.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse acknowledges a mutation.
type StatusResponse struct {
	Status Status `json:"status"`
}

// HealthCheck is one named check in the health response.
type HealthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse reports the aggregate service health.
type HealthResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks,omitempty"`
}

// Record is the flattened view of a generic store object. Absent fields
// default to blank strings.
type Record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedDate string `json:"createddate"`
}

// ModelCreateRequest is the body of POST /connect/models.
type ModelCreateRequest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	SamplingRate     int64    `json:"sampling_rate"`
	ModelType        string   `json:"model_type"`
	PastCovariates   []string `json:"past_covariates"`
	Target           []string `json:"target"`
	FutureCovariates []string `json:"future_covariates"`
	Status           []string `json:"status"`
	TrainingHorizon  int64    `json:"training_horizon"`
	ForecastHorizon  int64    `json:"forecast_horizon"`
	UpdateFrequency  int64    `json:"update_frequency"`
	RetrainFrequency int64    `json:"retrain_frequency"`
}

// Model is the flattened view of a forecast model asset, metadata decoded
// back into typed fields.
type Model struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ModelType        string   `json:"model_type"`
	SamplingRate     int64    `json:"sampling_rate"`
	PastCovariates   []string `json:"past_covariates"`
	Target           []string `json:"target"`
	FutureCovariates []string `json:"future_covariates"`
	Status           []string `json:"status"`
	TrainingHorizon  int64    `json:"training_horizon"`
	ForecastHorizon  int64    `json:"forecast_horizon"`
	UpdateFrequency  int64    `json:"update_frequency"`
	RetrainFrequency int64    `json:"retrain_frequency"`
}
