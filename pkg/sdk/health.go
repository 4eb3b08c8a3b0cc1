package sdk

import (
	"context"

	healthuc "github.com/gearstack/catsearch/internal/usecase/health"
)

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "error"
	Checks map[string]string // component to "ok"/"error"
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.health.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// healthChecker is the internal interface for health checks.
type healthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
