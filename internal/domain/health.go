package domain

import "time"

const (
	// HealthStatusOK indicates all dependencies are reachable.
	HealthStatusOK = "ok"
	// HealthStatusDegraded indicates at least one dependency failed its probe.
	HealthStatusDegraded = "degraded"
	// HealthStatusError indicates a probe was cancelled or timed out.
	HealthStatusError = "error"
)

// HealthCheck describes the outcome of a single dependency probe.
type HealthCheck struct {
	Status    string        `json:"status"`
	Error     string        `json:"error,omitempty"`
	Latency   time.Duration `json:"latency"`
	CheckedAt time.Time     `json:"checkedAt"`
}

// HealthReport aggregates dependency probes for the health endpoint.
type HealthReport struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version,omitempty"`
	Uptime      time.Duration          `json:"uptime,omitempty"`
	Checks      map[string]HealthCheck `json:"checks"`
	GeneratedAt time.Time              `json:"generatedAt"`
}
