package reportcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codeval-2025.net/internal/core/ports/primary"
	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeval-2025.net/internal/domain"
)

const (
	reportKeyPrefix  = "report:fp:"
	reportExpiration = 15 * time.Minute
)

var _ secondary.ReportCache = (*ReportCache)(nil)

// ReportCache implements the ReportCache interface with Redis, keyed by
// submission fingerprint.
type ReportCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewReportCache creates a new Redis report cache
func NewReportCache(redisClient *redis.Client, logger primary.Logger) *ReportCache {
	return &ReportCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetReport retrieves a cached report; a miss returns (nil, nil).
func (r *ReportCache) GetReport(ctx context.Context, fingerprint string) (*domain.SubmissionReport, error) {
	data, err := r.redisClient.Get(ctx, reportKeyPrefix+fingerprint).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached report: %w", err)
	}

	var report domain.SubmissionReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		r.logger.Warn("Discarding unreadable cached report", "fingerprint", fingerprint, "error", err)
		return nil, nil
	}
	return &report, nil
}

// PutReport caches a report under the submission fingerprint with a TTL.
func (r *ReportCache) PutReport(ctx context.Context, fingerprint string, report *domain.SubmissionReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := r.redisClient.Set(ctx, reportKeyPrefix+fingerprint, data, reportExpiration).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}
