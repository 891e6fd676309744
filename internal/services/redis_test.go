package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/emberhall/mystery-engine/pkg/state"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStore("redis://"+mr.Addr(), time.Hour, logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis store: %v", err)
	}

	return store, mr
}

func TestRedisStore_SaveLoadDelete(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	s := state.NewSession("Tester")
	s.AddEvidence("a clue")

	assert.NoError(t, store.Ping(ctx))
	assert.NoError(t, store.SaveSession(ctx, s))

	loaded, err := store.LoadSession(ctx, s.ID)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Equal(t, s.ID, loaded.ID)
	assert.Equal(t, s.Location, loaded.Location)
	assert.Equal(t, []string{"a clue"}, loaded.Evidence)
	assert.Equal(t, 1, loaded.CluesFound)
	assert.Len(t, loaded.Timeline, 1)

	assert.NoError(t, store.DeleteSession(ctx, s.ID))
	loaded, err = store.LoadSession(ctx, s.ID)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_LoadMissingIsNil(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	loaded, err := store.LoadSession(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_TTLRefreshedOnWrite(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	s := state.NewSession("Tester")
	assert.NoError(t, store.SaveSession(ctx, s))

	mr.FastForward(30 * time.Minute)
	assert.NoError(t, store.SaveSession(ctx, s))
	mr.FastForward(45 * time.Minute)

	loaded, err := store.LoadSession(ctx, s.ID)
	assert.NoError(t, err)
	assert.NotNil(t, loaded, "TTL should restart on save")

	mr.FastForward(2 * time.Hour)
	loaded, err = store.LoadSession(ctx, s.ID)
	assert.NoError(t, err)
	assert.Nil(t, loaded, "session should expire after TTL")
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	_, err := NewRedisStore("not a url", time.Hour, logger)
	assert.Error(t, err)
}
