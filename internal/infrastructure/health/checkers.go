package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
	"github.com/offmylawn101/slopwatch/internal/core/ports"
)

// snapshotHealthChecker verifies the snapshot directory is writable, since
// every vote triggers a synchronous write there.
type snapshotHealthChecker struct{ path string }

func (s *snapshotHealthChecker) Name() string { return "snapshot" }

func (s *snapshotHealthChecker) Check(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	probe, err := os.CreateTemp(dir, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("snapshot directory not writable: %w", err)
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client *redis.Client }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewSnapshotHealthChecker creates a health checker for snapshot storage.
func NewSnapshotHealthChecker(path string) ports.HealthChecker {
	return &snapshotHealthChecker{path: path}
}

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}
