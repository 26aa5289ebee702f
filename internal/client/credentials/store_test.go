package credentials

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
	"github.com/dmitrijs2005/wevraa-admin/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newClockedStore(t *testing.T) (*KVStore, *MemoryBackend, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := NewMemoryBackend()
	b.now = clock.now
	return NewKVStore(b), b, clock
}

func TestExpiresInDays(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 1},
		{-5, 1},
		{900, 1},
		{86400, 1},
		{86400*2 - 1, 1},
		{86400 * 2, 2},
		{86400*7 + 3600, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpiresInDays(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestKVStore_EmptyStoreReturnsBlanks(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	at, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, at)

	rt, err := s.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, rt)

	u, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestKVStore_SetTokensWritesBoth(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, "A1", "R1", 3600))

	at, _ := s.AccessToken(ctx)
	rt, _ := s.RefreshToken(ctx)
	assert.Equal(t, "A1", at)
	assert.Equal(t, "R1", rt)
}

func TestKVStore_SetTokensRejectsHalfPair(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.SetTokens(ctx, "A1", "R1", 3600))

	require.ErrorIs(t, s.SetTokens(ctx, "A2", "", 3600), ErrIncompleteTokens)
	require.ErrorIs(t, s.SetTokens(ctx, "", "R2", 3600), ErrIncompleteTokens)

	at, _ := s.AccessToken(ctx)
	rt, _ := s.RefreshToken(ctx)
	assert.Equal(t, "A1", at)
	assert.Equal(t, "R1", rt)
}

func TestKVStore_TokensExpireAfterWholeDays(t *testing.T) {
	s, _, clock := newClockedStore(t)
	ctx := context.Background()

	// 2.5 days floors to 2.
	require.NoError(t, s.SetTokens(ctx, "A1", "R1", 86400*2+43200))

	clock.t = clock.t.Add(47 * time.Hour)
	at, _ := s.AccessToken(ctx)
	assert.Equal(t, "A1", at)

	clock.t = clock.t.Add(time.Hour)
	at, _ = s.AccessToken(ctx)
	rt, _ := s.RefreshToken(ctx)
	assert.Empty(t, at)
	assert.Empty(t, rt)
}

func TestKVStore_UserSnapshotRoundTrip(t *testing.T) {
	s, _, clock := newClockedStore(t)
	ctx := context.Background()

	user := models.User{ID: "u1", Email: "a@b.com", FirstName: "Ada", LastName: "Lovelace", Role: "ADMIN"}
	require.NoError(t, s.SetUser(ctx, user))

	got, err := s.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	clock.t = clock.t.Add(UserTTL)
	got, err = s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestKVStore_ClearRemovesEverything(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, SaveSession(ctx, s, &models.Session{
		AccessToken: "A", RefreshToken: "R", ExpiresIn: 60, User: models.User{ID: "u"},
	}))

	require.NoError(t, s.Clear(ctx))

	at, _ := s.AccessToken(ctx)
	rt, _ := s.RefreshToken(ctx)
	u, _ := s.User(ctx)
	assert.Empty(t, at)
	assert.Empty(t, rt)
	assert.Nil(t, u)
}

func TestKVStore_SealerKeepsPlaintextOutOfBackend(t *testing.T) {
	sealer, err := cryptox.NewPassphraseSealer("passphrase", []byte("salt"))
	require.NoError(t, err)

	b := NewMemoryBackend()
	s := NewKVStore(b, WithSealer(sealer))
	ctx := context.Background()

	require.NoError(t, s.SetTokens(ctx, "plain-access", "plain-refresh", 3600))

	raw, err := b.Get(ctx, AccessTokenKey)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, []byte("plain-access")))

	at, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "plain-access", at)

	// Reading with a different key fails loudly instead of returning garbage.
	other, err := cryptox.NewPassphraseSealer("other", []byte("salt"))
	require.NoError(t, err)
	_, err = NewKVStore(b, WithSealer(other)).AccessToken(ctx)
	require.Error(t, err)
}

type failingBackend struct{ err error }

func (f failingBackend) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingBackend) SetMany(context.Context, ...Entry) error { return f.err }
func (f failingBackend) Delete(context.Context, ...string) error { return f.err }

func TestKVStore_WrapsBackendErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	s := NewKVStore(failingBackend{err: boom})
	ctx := context.Background()

	_, err := s.AccessToken(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.SetTokens(ctx, "a", "r", 1), boom)
	require.ErrorIs(t, s.SetUser(ctx, models.User{}), boom)
	require.ErrorIs(t, s.Clear(ctx), boom)
}
