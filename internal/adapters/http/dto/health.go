package dto

import (
	"sort"

	"github.com/jsamuelsen11/listing-search-service/internal/platform/health"
)

// Probe status values.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthStatus is the body of both probe endpoints. Checks maps each
// registered component to "ok" or its failure message and is omitted from
// liveness.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Live is the liveness body.
func Live() HealthStatus {
	return HealthStatus{Status: HealthOK}
}

// NewReadiness summarizes health registry results. The second value lists
// the failing component names in sorted order and is empty when ready.
func NewReadiness(results map[string]error) (HealthStatus, []string) {
	status := HealthStatus{Status: HealthReady, Checks: make(map[string]string, len(results))}

	var failing []string
	for name, err := range results {
		if err == nil {
			status.Checks[name] = HealthOK
			continue
		}
		status.Checks[name] = err.Error()
		failing = append(failing, name)
	}

	if !health.Healthy(results) {
		status.Status = HealthNotReady
		sort.Strings(failing)
	}
	return status, failing
}
