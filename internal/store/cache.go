package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "agrolytics:report:"

// CachedStore is a read-through Redis cache in front of another ReportStore.
// Reports never change after creation, so entries are only ever added or
// left to expire. Cache failures are logged and fall back to the inner store.
type CachedStore struct {
	next ReportStore
	rdb  goredis.Cmdable
	ttl  time.Duration
}

func NewCachedStore(next ReportStore, rdb goredis.Cmdable, ttl time.Duration) *CachedStore {
	return &CachedStore{next: next, rdb: rdb, ttl: ttl}
}

var _ ReportStore = (*CachedStore)(nil)

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}

func (s *CachedStore) Create(ctx context.Context, rec *Record) error {
	if err := s.next.Create(ctx, rec); err != nil {
		return err
	}
	s.put(ctx, rec)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, id uuid.UUID, userID string) (*Record, error) {
	raw, err := s.rdb.Get(ctx, cacheKey(id)).Result()
	switch {
	case err == nil:
		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			slog.Warn("discarding corrupt cached report", "report_id", id, "err", err)
			break
		}
		if rec.UserID != userID {
			return nil, ErrNotFound
		}
		return &rec, nil
	case !errors.Is(err, goredis.Nil):
		slog.Warn("report cache read failed", "report_id", id, "err", err)
	}

	rec, err := s.next.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	s.put(ctx, rec)
	return rec, nil
}

func (s *CachedStore) List(ctx context.Context, userID string, limit, offset int) ([]Summary, error) {
	return s.next.List(ctx, userID, limit, offset)
}

func (s *CachedStore) put(ctx context.Context, rec *Record) {
	raw, err := json.Marshal(rec)
	if err != nil {
		slog.Warn("failed to encode report for cache", "report_id", rec.ID, "err", err)
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(rec.ID), string(raw), s.ttl).Err(); err != nil {
		slog.Warn("report cache write failed", "report_id", rec.ID, "err", err)
	}
}
