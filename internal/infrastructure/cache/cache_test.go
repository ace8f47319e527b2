package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// memoryCache is an in-process ListCache used to exercise Fetch without Redis.
type memoryCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.getErr != nil {
		return false, nil
	}
	payload, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	m.entries[key] = payload
	return nil
}

func (m *memoryCache) Invalidate(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func TestDoctorListKey_Deterministic(t *testing.T) {
	a := DoctorListKey(&entity.ActorFilter{Search: "smith", Specialization: "cardiology"})
	b := DoctorListKey(&entity.ActorFilter{Search: "smith", Specialization: "cardiology"})
	assert.Equal(t, a, b)
}

func TestListKeys_DistinctFiltersNeverCollide(t *testing.T) {
	keys := []string{
		DoctorListKey(nil),
		DoctorListKey(&entity.ActorFilter{Search: "smith"}),
		DoctorListKey(&entity.ActorFilter{Specialization: "smith"}),
		PatientListKey(nil),
		PatientListKey(&entity.ActorFilter{Search: "smith"}),
		PatientListKey(&entity.ActorFilter{Gender: entity.GenderFemale}),
		ReportKey(nil),
		ReportKey(&entity.ReportFilter{StartDate: "2024-09-24", EndDate: "2024-09-26"}),
		ReportKey(&entity.ReportFilter{StartDate: "2024-09-24", EndDate: "2024-09-26", Status: "pending"}),
	}

	seen := map[string]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}
}

func TestListKeys_EmptyFilterEqualsNil(t *testing.T) {
	assert.Equal(t, DoctorListKey(nil), DoctorListKey(&entity.ActorFilter{}))
	assert.Equal(t, PatientListKey(nil), PatientListKey(&entity.ActorFilter{}))
	assert.Equal(t, ReportKey(nil), ReportKey(&entity.ReportFilter{}))
}

func TestRecordListKey_TripleScoped(t *testing.T) {
	appointmentID := uuid.New()
	patientID := uuid.New()
	doctorID := uuid.New()

	key := RecordListKey(appointmentID, patientID, doctorID)
	other := RecordListKey(appointmentID, patientID, uuid.New())
	assert.NotEqual(t, key, other)
}

func TestFetch_MissPopulatesThenHitsWithoutFetching(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()
	calls := 0

	fetch := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	first, err := Fetch(ctx, c, "k", time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, 1, calls)

	second, err := Fetch(ctx, c, "k", time.Minute, fetch)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second identical read must be served from cache")
}

func TestFetch_InvalidationForcesRefetchOfThatKeyOnly(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()
	calls := map[string]int{}

	fetchFor := func(key string) func() (int, error) {
		return func() (int, error) {
			calls[key]++
			return calls[key], nil
		}
	}

	_, _ = Fetch(ctx, c, "k1", time.Minute, fetchFor("k1"))
	_, _ = Fetch(ctx, c, "k2", time.Minute, fetchFor("k2"))

	_ = c.Invalidate(ctx, "k1")

	v1, _ := Fetch(ctx, c, "k1", time.Minute, fetchFor("k1"))
	v2, _ := Fetch(ctx, c, "k2", time.Minute, fetchFor("k2"))

	assert.Equal(t, 2, v1, "invalidated key must be refetched")
	assert.Equal(t, 1, v2, "untouched key must stay cached")
}

func TestFetch_CacheFailureDegradesToDirectFetch(t *testing.T) {
	c := newMemoryCache()
	c.getErr = errors.New("redis down")
	c.setErr = errors.New("redis down")
	ctx := context.Background()
	calls := 0

	fetch := func() (string, error) {
		calls++
		return "fresh", nil
	}

	for i := 0; i < 2; i++ {
		v, err := Fetch(ctx, c, "k", time.Minute, fetch)
		assert.NoError(t, err)
		assert.Equal(t, "fresh", v)
	}
	assert.Equal(t, 2, calls)
}

func TestFetch_FetchErrorNotCached(t *testing.T) {
	c := newMemoryCache()
	ctx := context.Background()
	boom := errors.New("db down")

	_, err := Fetch(ctx, c, "k", time.Minute, func() (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, c.entries)
}
