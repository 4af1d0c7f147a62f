package models

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// RootResponse is the body of GET /
type RootResponse struct {
	Message string `json:"message"`
}

// PlatformInfo echoes the request fields plus fixed platform stats
type PlatformInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Uptime      string `json:"uptime"`
}

// PlatformMetadata carries fixed-at-this-version processing metadata.
// The lambda_version field name is part of the response contract.
type PlatformMetadata struct {
	ProcessedAt   string `json:"processed_at"`
	LambdaVersion string `json:"lambda_version"`
	Region        string `json:"region"`
}

// PlatformResponse is the body of POST /platform
type PlatformResponse struct {
	Message  string           `json:"message"`
	Platform PlatformInfo     `json:"platform"`
	Metadata PlatformMetadata `json:"metadata"`
}
