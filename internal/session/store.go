package session

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Record is one persisted console session: the opaque identity blob stored
// under the hash of its session key. This is the console's equivalent of
// the well-known browser storage key.
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	KeyHash   string `gorm:"uniqueIndex;size:64;not null"`
	Blob      string `gorm:"not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TableName overrides the table name
func (Record) TableName() string {
	return "sessions"
}

// Store persists console sessions in the local database
type Store struct {
	db *gorm.DB
}

// NewStore creates a session store and migrates its table
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Create persists a session blob under the given key
func (s *Store) Create(key, blob string, ttl time.Duration) error {
	record := Record{
		KeyHash:   hashKey(key),
		Blob:      blob,
		ExpiresAt: time.Now().Add(ttl),
	}
	return s.db.Create(&record).Error
}

// Get returns the blob stored under the key. Expired sessions are removed
// on read and reported as expired.
func (s *Store) Get(key string) (string, error) {
	var record Record
	err := s.db.Where("key_hash = ?", hashKey(key)).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSessionNotFound
		}
		return "", err
	}

	if time.Now().After(record.ExpiresAt) {
		s.db.Delete(&record)
		return "", ErrSessionExpired
	}
	return record.Blob, nil
}

// Delete removes the session stored under the key
func (s *Store) Delete(key string) error {
	return s.db.Where("key_hash = ?", hashKey(key)).Delete(&Record{}).Error
}

// DeleteExpired removes every expired session and returns how many
func (s *Store) DeleteExpired() (int64, error) {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&Record{})
	return result.RowsAffected, result.Error
}

// hashKey hashes a session key with SHA256 so raw keys are never stored
func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
