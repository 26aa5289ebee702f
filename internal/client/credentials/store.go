// Package credentials persists the signed-in session between requests: the
// access/refresh token pair and a snapshot of the current user.
//
// Store is the contract the API client depends on. KVStore implements it on
// top of any Backend with per-key expiry: the in-process MemoryBackend, the
// SQLite metadata repository or the Redis repository.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
)

// Keys under which the session is stored.
const (
	AccessTokenKey  = "wevraa_access_token"
	RefreshTokenKey = "wevraa_refresh_token"
	UserKey         = "wevraa_user"
)

// UserTTL is how long the user snapshot is kept.
const UserTTL = 7 * 24 * time.Hour

// ErrIncompleteTokens is returned when only one half of a token pair is given.
var ErrIncompleteTokens = errors.New("access and refresh tokens must be set together")

// Store holds the current session. Empty strings mean "absent".
type Store interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, accessToken, refreshToken string, expiresInSeconds int) error
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// Entry is one value written to a Backend. A zero TTL means no expiry.
type Entry struct {
	Key   string
	Value []byte
	TTL   time.Duration
}

// Backend is a key/value store with expiry. Get returns (nil, nil) for a
// missing or expired key. SetMany must apply all entries atomically.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, entries ...Entry) error
	Delete(ctx context.Context, keys ...string) error
}

// Sealer encrypts values before they are handed to the backend.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// ExpiresInDays converts the server's expiresIn (seconds) into whole days,
// never less than one.
func ExpiresInDays(expiresInSeconds int) int {
	days := expiresInSeconds / 86400
	if days < 1 {
		return 1
	}
	return days
}

// SaveSession writes the token pair and then the user snapshot.
func SaveSession(ctx context.Context, s Store, session *models.Session) error {
	if err := s.SetTokens(ctx, session.AccessToken, session.RefreshToken, session.ExpiresIn); err != nil {
		return err
	}
	return s.SetUser(ctx, session.User)
}

type KVStore struct {
	backend Backend
	sealer  Sealer
}

type Option func(*KVStore)

// WithSealer encrypts every stored value with s.
func WithSealer(s Sealer) Option {
	return func(k *KVStore) { k.sealer = s }
}

func NewKVStore(backend Backend, opts ...Option) *KVStore {
	s := &KVStore{backend: backend}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *KVStore) AccessToken(ctx context.Context) (string, error) {
	v, err := s.get(ctx, AccessTokenKey)
	return string(v), err
}

func (s *KVStore) RefreshToken(ctx context.Context) (string, error) {
	v, err := s.get(ctx, RefreshTokenKey)
	return string(v), err
}

func (s *KVStore) SetTokens(ctx context.Context, accessToken, refreshToken string, expiresInSeconds int) error {
	if accessToken == "" || refreshToken == "" {
		return ErrIncompleteTokens
	}
	ttl := time.Duration(ExpiresInDays(expiresInSeconds)) * 24 * time.Hour

	access, err := s.seal([]byte(accessToken))
	if err != nil {
		return err
	}
	refresh, err := s.seal([]byte(refreshToken))
	if err != nil {
		return err
	}

	if err := s.backend.SetMany(ctx,
		Entry{Key: AccessTokenKey, Value: access, TTL: ttl},
		Entry{Key: RefreshTokenKey, Value: refresh, TTL: ttl},
	); err != nil {
		return fmt.Errorf("store tokens: %w", err)
	}
	return nil
}

func (s *KVStore) User(ctx context.Context) (*models.User, error) {
	v, err := s.get(ctx, UserKey)
	if err != nil || v == nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

func (s *KVStore) SetUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	sealed, err := s.seal(data)
	if err != nil {
		return err
	}
	if err := s.backend.SetMany(ctx, Entry{Key: UserKey, Value: sealed, TTL: UserTTL}); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, AccessTokenKey, RefreshTokenKey, UserKey); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (s *KVStore) get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if v == nil || s.sealer == nil {
		return v, nil
	}
	plain, err := s.sealer.Open(v)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return plain, nil
}

func (s *KVStore) seal(v []byte) ([]byte, error) {
	if s.sealer == nil {
		return v, nil
	}
	return s.sealer.Seal(v)
}
