package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orgboard/internal/models"
)

func TestAutoMigrateCreatesSchema(t *testing.T) {
	db, err := Open(Config{Driver: "sqlite"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	migrator := db.Migrator()
	require.True(t, migrator.HasTable(&models.Organization{}))
	require.True(t, migrator.HasTable(&models.User{}))
	require.True(t, migrator.HasIndex(&models.Organization{}, "Slug"))
	require.True(t, migrator.HasIndex(&models.User{}, "Email"))
}
