package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisSessionService(t *testing.T) (InterfaceSessionService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSessionService(testConfig(), client), mr
}

func TestSessionRoundTrip(t *testing.T) {
	svc, _ := newRedisSessionService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, &SessionData{OfficerID: 7, Username: "admin", OfficerName: "System Administrator"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	data, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint(7), data.OfficerID)
	assert.Equal(t, "admin", data.Username)
	assert.Equal(t, "System Administrator", data.OfficerName)
}

func TestSessionGetUnknown(t *testing.T) {
	svc, _ := newRedisSessionService(t)

	_, err := svc.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionDestroy(t *testing.T) {
	svc, _ := newRedisSessionService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, &SessionData{OfficerID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(ctx, id))

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	svc, mr := newRedisSessionService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, &SessionData{OfficerID: 1})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFlashesAreOneShot(t *testing.T) {
	svc, _ := newRedisSessionService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, &SessionData{})
	require.NoError(t, err)

	require.NoError(t, svc.AddFlash(ctx, id, "success", "Login successful!"))
	require.NoError(t, svc.AddFlash(ctx, id, "info", "No results found."))

	flashes, err := svc.PopFlashes(ctx, id)
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Level: "success", Message: "Login successful!"}, flashes[0])
	assert.Equal(t, Flash{Level: "info", Message: "No results found."}, flashes[1])

	again, err := svc.PopFlashes(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestFlashOnUnknownSession(t *testing.T) {
	svc, _ := newRedisSessionService(t)

	err := svc.AddFlash(context.Background(), "no-such-session", "error", "boom")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryFallback(t *testing.T) {
	svc := NewSessionService(testConfig(), nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, &SessionData{OfficerID: 3, Username: "admin"})
	require.NoError(t, err)

	data, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint(3), data.OfficerID)

	require.NoError(t, svc.AddFlash(ctx, id, "warning", "heads up"))
	flashes, err := svc.PopFlashes(ctx, id)
	require.NoError(t, err)
	require.Len(t, flashes, 1)

	require.NoError(t, svc.Destroy(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, svc.Ping(ctx))
}
