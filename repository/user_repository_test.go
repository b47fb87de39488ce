package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"marketplace-chat/apperror"
	"marketplace-chat/repository/dbtest"
)

func TestUserRepository_FindByID(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.SeedUser(t, db, "alice", "Alice")
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.FindByID(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)

	_, err = repo.FindByID(ctx, "nobody")
	require.ErrorIs(t, err, apperror.ErrUserNotFound)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepository_SoftDeletedUserIsNotFound(t *testing.T) {
	db := dbtest.Open(t)
	user := dbtest.SeedUser(t, db, "alice", "Alice")
	require.NoError(t, db.Delete(&user).Error)

	_, err := NewUserRepository(db).FindByID(context.Background(), "alice")
	require.ErrorIs(t, err, apperror.ErrUserNotFound)
}

func TestAuthRepository_FindByUsernamePreloadsUser(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.SeedUser(t, db, "alice", "Alice")

	account, err := NewAuthRepository(db).FindByUsername(context.Background(), "u-alice")
	require.NoError(t, err)
	require.Equal(t, "alice", account.User.ID)
}
