package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	records map[uuid.UUID]*Record
	gets    int
}

func (m *memoryStore) Create(_ context.Context, rec *Record) error {
	rec.ID = uuid.New()
	rec.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	m.records[rec.ID] = rec
	return nil
}

func (m *memoryStore) Get(_ context.Context, id uuid.UUID, userID string) (*Record, error) {
	m.gets++
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (m *memoryStore) List(context.Context, string, int, int) ([]Summary, error) {
	return []Summary{}, nil
}

func sampleRecord() *Record {
	return &Record{
		ID:         uuid.New(),
		UserID:     "user-1",
		Title:      "weather",
		ReportType: "weather_analysis",
		DateFrom:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Data:       json.RawMessage(`{"summary":{"totalFarms":1}}`),
		CreatedAt:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCachedStore_MissFallsThroughAndFills(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &memoryStore{records: map[uuid.UUID]*Record{}}
	rec := sampleRecord()
	inner.records[rec.ID] = rec

	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	mock.ExpectGet(cacheKey(rec.ID)).RedisNil()
	mock.ExpectSet(cacheKey(rec.ID), string(raw), time.Hour).SetVal("OK")

	s := NewCachedStore(inner, rdb, time.Hour)
	got, err := s.Get(context.Background(), rec.ID, "user-1")

	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, 1, inner.gets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedStore_HitSkipsInnerStore(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &memoryStore{records: map[uuid.UUID]*Record{}}
	rec := sampleRecord()

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	mock.ExpectGet(cacheKey(rec.ID)).SetVal(string(raw))

	s := NewCachedStore(inner, rdb, time.Hour)
	got, err := s.Get(context.Background(), rec.ID, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "weather_analysis", got.ReportType)
	assert.JSONEq(t, string(rec.Data), string(got.Data))
	assert.Zero(t, inner.gets)
}

func TestCachedStore_HitForOtherUserIsNotFound(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	rec := sampleRecord()

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	mock.ExpectGet(cacheKey(rec.ID)).SetVal(string(raw))

	s := NewCachedStore(&memoryStore{records: map[uuid.UUID]*Record{}}, rdb, time.Hour)
	_, err = s.Get(context.Background(), rec.ID, "someone-else")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachedStore_CreateWritesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &memoryStore{records: map[uuid.UUID]*Record{}}
	s := NewCachedStore(inner, rdb, time.Minute)

	rec := sampleRecord()
	rec.ID = uuid.Nil
	// The key depends on the id assigned by the inner store.
	mock.Regexp().ExpectSet(`agrolytics:report:.*`, `.*`, time.Minute).SetVal("OK")

	require.NoError(t, s.Create(context.Background(), rec))

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Contains(t, inner.records, rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
