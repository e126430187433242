package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/scoring"
)

const (
	resultKeyPrefix  = "scoring:result"
	versionKeyPrefix = "scoring:results"

	defaultTTL = 30 * 24 * time.Hour
)

// Recorder keeps an audit trail of scoring results in Redis: every result is
// stored as JSON under its own id and indexed by rule version, so downstream
// tooling can detect rule-version drift. A nil Recorder is a no-op; scoring
// never depends on the trail being available.
type Recorder struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func New(addr, password string, db int, ttl time.Duration, logger *zap.Logger) *Recorder {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Recorder{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl:    ttl,
		logger: logger,
	}
}

// Record stores the result and returns its audit id.
func (r *Recorder) Record(ctx context.Context, result *scoring.Result) (string, error) {
	if r == nil {
		return "", nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	id := uuid.NewString()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf("%s:%s", resultKeyPrefix, id), data, r.ttl)
	pipe.RPush(ctx, fmt.Sprintf("%s:%s", versionKeyPrefix, result.RuleVersion), id)
	pipe.Expire(ctx, fmt.Sprintf("%s:%s", versionKeyPrefix, result.RuleVersion), r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("pipeline exec: %w", err)
	}

	if r.logger != nil {
		r.logger.Debug("recorded scoring result",
			zap.String("audit_id", id),
			zap.String("rule_version", result.RuleVersion),
		)
	}

	return id, nil
}

// ResultIDs returns the audit ids recorded for a rule version, oldest first.
func (r *Recorder) ResultIDs(ctx context.Context, ruleVersion string) ([]string, error) {
	if r == nil {
		return nil, nil
	}

	ids, err := r.client.LRange(ctx, fmt.Sprintf("%s:%s", versionKeyPrefix, ruleVersion), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange: %w", err)
	}

	return ids, nil
}

// Result loads one recorded result by audit id.
func (r *Recorder) Result(ctx context.Context, id string) (*scoring.Result, error) {
	if r == nil {
		return nil, nil
	}

	data, err := r.client.Get(ctx, fmt.Sprintf("%s:%s", resultKeyPrefix, id)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("audit record %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var result scoring.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}

	return &result, nil
}

// Close releases the underlying Redis connection.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
