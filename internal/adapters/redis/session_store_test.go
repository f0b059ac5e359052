package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

func setupTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:         id,
		Username:   "alice",
		Credential: domainauth.NewCredential("alice", "pw"),
		Role:       domainauth.RoleManager,
		ExpiresAt:  time.Now().Add(30 * time.Minute),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	session := testSession("sess-1")
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.Username, got.Username)
	// The credential must round-trip byte-for-byte or every backend call
	// made after a restart would fail.
	assert.Equal(t, session.Credential, got.Credential)
	assert.Equal(t, session.Role, got.Role)
	assert.WithinDuration(t, session.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestSessionStore_Save_EmptyID(t *testing.T) {
	store, _ := setupTestStore(t)
	sess := testSession("")
	assert.Error(t, store.Save(context.Background(), sess))
}

func TestSessionStore_Save_AlreadyExpired(t *testing.T) {
	store, _ := setupTestStore(t)
	sess := testSession("sess-exp")
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Save(context.Background(), sess))
}

func TestSessionStore_Get_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Get_CorruptEntry(t *testing.T) {
	store, mr := setupTestStore(t)

	// A malformed persisted value behaves as "no session", never an error
	// the caller has to handle specially.
	mr.Set("hrms:session:bad", "{not json")

	_, err := store.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	// The corrupt entry was cleaned up.
	assert.False(t, mr.Exists("hrms:session:bad"))
}

func TestSessionStore_Get_ExpiredEntry(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	sess := testSession("sess-ttl")
	require.NoError(t, store.Save(ctx, sess))

	// Advance miniredis past the key's TTL; the entry ages out.
	mr.FastForward(time.Hour)

	_, err := store.Get(ctx, "sess-ttl")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Get_StaleEntry(t *testing.T) {
	store, mr := setupTestStore(t)

	// An entry whose ExpiresAt has passed but whose Redis TTL has not
	// fired yet must still read as "no session".
	stale := testSession("sess-stale")
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	mr.Set("hrms:session:sess-stale", string(data))

	_, err = store.Get(context.Background(), "sess-stale")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	assert.False(t, mr.Exists("hrms:session:sess-stale"))
}

func TestSessionStore_Delete_Idempotent(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	sess := testSession("sess-del")
	require.NoError(t, store.Save(ctx, sess))

	require.NoError(t, store.Delete(ctx, "sess-del"))
	// Deleting again (or deleting something absent) is not an error.
	require.NoError(t, store.Delete(ctx, "sess-del"))
	require.NoError(t, store.Delete(ctx, ""))

	_, err := store.Get(ctx, "sess-del")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewSessionStoreWithPrefix(client, "custom:")
	require.NoError(t, store.Save(context.Background(), testSession("sess-p")))
	assert.True(t, mr.Exists("custom:sess-p"))
}
