package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"flatquiz/models"

	"github.com/redis/go-redis/v9"
)

const resultHistoryKey = "quiz:results:recent"

// ResultHistory keeps the most recent graded submissions.
type ResultHistory interface {
	Record(ctx context.Context, rec models.ScoreRecord) error
	Recent(ctx context.Context, limit int) ([]models.ScoreRecord, error)
}

// RedisResultHistory stores records as JSON in a capped Redis list. The list
// expires ttl after the last write.
type RedisResultHistory struct {
	redis *redis.Client
	size  int
	ttl   time.Duration
}

func NewRedisResultHistory(client *redis.Client, size int, ttl time.Duration) *RedisResultHistory {
	if size <= 0 {
		size = 50
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisResultHistory{
		redis: client,
		size:  size,
		ttl:   ttl,
	}
}

func (h *RedisResultHistory) Record(ctx context.Context, rec models.ScoreRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode score record: %w", err)
	}

	pipe := h.redis.TxPipeline()
	pipe.LPush(ctx, resultHistoryKey, data)
	pipe.LTrim(ctx, resultHistoryKey, 0, int64(h.size-1))
	pipe.Expire(ctx, resultHistoryKey, h.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store score record: %w", err)
	}
	return nil
}

func (h *RedisResultHistory) Recent(ctx context.Context, limit int) ([]models.ScoreRecord, error) {
	if limit <= 0 || limit > h.size {
		limit = h.size
	}

	items, err := h.redis.LRange(ctx, resultHistoryKey, 0, int64(limit-1)).Result()
	if err != nil {
		if err == redis.Nil {
			return []models.ScoreRecord{}, nil
		}
		return nil, fmt.Errorf("read score records: %w", err)
	}

	records := make([]models.ScoreRecord, 0, len(items))
	for _, item := range items {
		var rec models.ScoreRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			log.Printf("Skipping unreadable score record: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
