package ports

import "context"

// HealthChecker abstracts a dependency health probe (snapshot storage, Redis).
// Implementations return an error when the dependency is unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
