// Package dbtest opens a migrated throwaway database for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"marketplace-chat/entity"
)

// Open returns a sqlite database in a temp dir with the service schema applied.
// A single connection keeps concurrent test writers from tripping over sqlite locks.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "chat.db")), &gorm.Config{
		NamingStrategy: entity.NamingStrategy,
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	conn, err := db.DB()
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.AutoMigrate(entity.Models()...))
	return db
}

// SeedUser inserts an account and its user profile with the given user id and display name.
func SeedUser(t testing.TB, db *gorm.DB, id, name string) entity.User {
	t.Helper()

	account := entity.Account{
		UserName: "u-" + id,
		Password: "not-a-hash",
		User: entity.User{
			BaseEntity:  entity.BaseEntity{ID: id},
			Name:        name,
			Email:       id + "@example.com",
			PhoneNumber: "08-" + id,
		},
	}
	require.NoError(t, db.Create(&account).Error)
	return account.User
}
