package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"marketplace-chat/apperror"
	"marketplace-chat/cache"
	"marketplace-chat/config/logger"
	"marketplace-chat/repository"
	"marketplace-chat/repository/dbtest"
)

func newUserUsecase(t *testing.T) (UserUsecase, *cache.PresenceStore) {
	t.Helper()
	db := dbtest.Open(t)
	dbtest.SeedUser(t, db, "alice", "Alice")
	dbtest.SeedUser(t, db, "bob", "Bob")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	presence := cache.NewPresenceStore(client, "chat", time.Hour)

	return NewUserUsecase(repository.NewUserRepository(db), presence, logger.NewNop()), presence
}

func TestUserUsecase_Lookup(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	alice, err := uc.GetUserByID(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Alice", alice.Name)

	_, err = uc.GetUserByID(ctx, "ghost")
	require.ErrorIs(t, err, apperror.ErrUserNotFound)

	all, err := uc.GetAllUser(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUserUsecase_GetPresence(t *testing.T) {
	uc, presence := newUserUsecase(t)
	ctx := context.Background()

	offline, err := uc.GetPresence(ctx, "bob")
	require.NoError(t, err)
	require.False(t, offline.Online)

	require.NoError(t, presence.MarkOnline(ctx, "bob"))
	online, err := uc.GetPresence(ctx, "bob")
	require.NoError(t, err)
	require.True(t, online.Online)
	require.Equal(t, "bob", online.UserID)

	_, err = uc.GetPresence(ctx, "ghost")
	require.ErrorIs(t, err, apperror.ErrNotFound)
}
