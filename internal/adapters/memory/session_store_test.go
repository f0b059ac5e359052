package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/ports"
)

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:         id,
		Username:   "bob",
		Credential: domainauth.NewCredential("bob", "pw"),
		Role:       domainauth.RoleEmployee,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testSession("sess-1")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestSessionStore_Save_Invalid(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, testSession("")))

	expired := testSession("sess-exp")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Save(ctx, expired))
}

func TestSessionStore_Get_Missing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Get_Expired(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testSession("sess-ttl")
	sess.ExpiresAt = time.Now().Add(20 * time.Millisecond)
	require.NoError(t, store.Save(ctx, sess))

	time.Sleep(30 * time.Millisecond)

	_, err := store.Get(ctx, "sess-ttl")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_Delete_Idempotent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-del")))
	require.NoError(t, store.Delete(ctx, "sess-del"))
	require.NoError(t, store.Delete(ctx, "sess-del"))
	require.NoError(t, store.Delete(ctx, ""))

	_, err := store.Get(ctx, "sess-del")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}
