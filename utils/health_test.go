package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCheckHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	h := CheckHealth(context.Background(), map[string]HealthCheck{"mongo": ok, "redis": ok})
	if !h.Healthy() || !h.Checks["mongo"] || !h.Checks["redis"] {
		t.Fatalf("all up: %+v", h)
	}

	h = CheckHealth(context.Background(), map[string]HealthCheck{"mongo": ok, "redis": down})
	if h.Healthy() || h.Checks["redis"] {
		t.Fatalf("redis down: %+v", h)
	}

	if h := CheckHealth(context.Background(), nil); !h.Healthy() {
		t.Fatalf("no checks should be healthy: %+v", h)
	}
}

func TestCheckHealthRunsEveryCheckDespiteFailures(t *testing.T) {
	down := func(context.Context) error { return errors.New("down") }
	slow := func(context.Context) error {
		time.Sleep(20 * time.Millisecond)
		return nil
	}

	h := CheckHealth(context.Background(), map[string]HealthCheck{"mongo": down, "redis": slow})
	if h.Healthy() {
		t.Fatalf("expected degraded: %+v", h)
	}
	if len(h.Checks) != 2 || h.Checks["mongo"] || !h.Checks["redis"] {
		t.Fatalf("every check should be recorded: %+v", h.Checks)
	}
}
