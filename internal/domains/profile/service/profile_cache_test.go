package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devnetwork-backend/internal/domains/profile"
)

// memCache is a map-backed pkg/cache.Cache for tests
type memCache struct {
	entries map[string][]byte
	hits    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(raw, dest)
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memCache) Ping(context.Context) error { return nil }

func TestListProfilesServedFromCache(t *testing.T) {
	repo := newMemProfileRepo()
	c := newMemCache()
	svc := NewProfileService(repo, &cascadeRecorder{}, &cascadeRecorder{}, &stubRepoLister{}, c)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, uuid.New(), profile.UpsertProfileRequest{
		Status: strPtr("dev"), Skills: strPtr("go"),
	})
	require.NoError(t, err)

	first, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 0, c.hits)

	second, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, c.hits)
}

func TestProfileMutationInvalidatesListCache(t *testing.T) {
	repo := newMemProfileRepo()
	c := newMemCache()
	svc := NewProfileService(repo, &cascadeRecorder{}, &cascadeRecorder{}, &stubRepoLister{}, c)
	ctx := context.Background()

	_, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	_, warm := c.entries[profileListCacheKey]
	require.True(t, warm)

	_, err = svc.Upsert(ctx, uuid.New(), profile.UpsertProfileRequest{
		Status: strPtr("dev"), Skills: strPtr("go"),
	})
	require.NoError(t, err)

	_, stillWarm := c.entries[profileListCacheKey]
	assert.False(t, stillWarm)

	refreshed, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, refreshed, 1)
}
