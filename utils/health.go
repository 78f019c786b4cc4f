package utils

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// HealthCheck probes one backing service.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string          `json:"status"`
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every check passed.
func (h HealthStatus) Healthy() bool { return h.Status == "ok" }

// CheckHealth runs all checks concurrently, each bounded by ctx. A failing
// check is recorded, never returned.
func CheckHealth(ctx context.Context, checks map[string]HealthCheck) HealthStatus {
	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]bool, len(checks))
	)
	for name, check := range checks {
		name, check := name, check
		g.Go(func() error {
			ok := check(ctx) == nil
			mu.Lock()
			results[name] = ok
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	status := "ok"
	for _, ok := range results {
		if !ok {
			status = "degraded"
		}
	}
	return HealthStatus{Status: status, Checks: results, CheckedAt: time.Now().UTC()}
}
