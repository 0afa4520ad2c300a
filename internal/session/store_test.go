package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sessions.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Create("key-1", "blob-1", time.Hour))

	blob, err := store.Get("key-1")
	require.NoError(t, err)
	assert.Equal(t, "blob-1", blob)
}

func TestStoreGetUnknownKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreRawKeysNeverStored(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("key-1", "blob-1", time.Hour))

	var record Record
	require.NoError(t, store.db.First(&record).Error)
	assert.NotEqual(t, "key-1", record.KeyHash)
	assert.Len(t, record.KeyHash, 64)
}

func TestStoreExpiredSessionRemovedOnRead(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("key-1", "blob-1", -time.Minute))

	_, err := store.Get("key-1")
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = store.Get("key-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("key-1", "blob-1", time.Hour))

	require.NoError(t, store.Delete("key-1"))

	_, err := store.Get("key-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreDeleteExpired(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create("live", "blob", time.Hour))
	require.NoError(t, store.Create("stale-1", "blob", -time.Minute))
	require.NoError(t, store.Create("stale-2", "blob", -time.Hour))

	removed, err := store.DeleteExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	blob, err := store.Get("live")
	require.NoError(t, err)
	assert.Equal(t, "blob", blob)
}
