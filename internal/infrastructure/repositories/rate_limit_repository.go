package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimitRedisRepository implements fixed-window counter storage on Redis,
// for deployments that share the limiter across replicas.
type RateLimitRedisRepository struct {
	r         redis.Cmdable
	keyPrefix string
}

// takeScript checks and consumes one window slot atomically. The check runs
// before the increment so a rejected request leaves the counter untouched,
// matching the in-memory backend's semantics.
var takeScript = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
if current >= tonumber(ARGV[1]) then
	return {0, current, redis.call("PTTL", KEYS[1])}
end
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return {1, count, redis.call("PTTL", KEYS[1])}
`)

func NewRateLimitRedisRepository(r redis.Cmdable, keyPrefix string) *RateLimitRedisRepository {
	if keyPrefix == "" {
		keyPrefix = "ratelimit:user"
	}
	return &RateLimitRedisRepository{r: r, keyPrefix: keyPrefix}
}

// Take consumes one slot for userID in the current fixed window.
func (repo *RateLimitRedisRepository) Take(ctx context.Context, userID string, limit int, window time.Duration) (bool, int, time.Time, error) {
	key := fmt.Sprintf("%s:%s", repo.keyPrefix, userID)
	res, err := takeScript.Run(ctx, repo.r, []string{key}, limit, window.Milliseconds()).Result()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to run rate limit script: %w", err)
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("unexpected rate limit script result: %v", res)
	}
	allowed := vals[0].(int64) == 1
	count := int(vals[1].(int64))
	ttlMillis := vals[2].(int64)

	resetAt := time.Now().Add(window)
	if ttlMillis > 0 {
		resetAt = time.Now().Add(time.Duration(ttlMillis) * time.Millisecond)
	}
	return allowed, count, resetAt, nil
}
