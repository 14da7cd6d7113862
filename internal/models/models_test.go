package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openModelsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&Organization{}, &User{}))
	return db
}

func TestOrganizationDefaults(t *testing.T) {
	db := openModelsTestDB(t)

	org := Organization{Name: "Acme", Slug: "acme", Email: "a@acme.example"}
	require.NoError(t, db.Create(&org).Error)
	require.NotZero(t, org.ID)

	var stored Organization
	require.NoError(t, db.First(&stored, org.ID).Error)
	require.Equal(t, OrgStatusActive, stored.Status)
	require.Equal(t, DefaultMaxCoordinators, stored.MaxCoordinators)
	require.False(t, stored.CreatedAt.IsZero())
}

func TestOrganizationSlugUnique(t *testing.T) {
	db := openModelsTestDB(t)

	require.NoError(t, db.Create(&Organization{Name: "A", Slug: "acme", Email: "a@acme.example"}).Error)
	err := db.Create(&Organization{Name: "B", Slug: "acme", Email: "b@acme.example"}).Error
	require.Error(t, err)
}

func TestUserEmailUnique(t *testing.T) {
	db := openModelsTestDB(t)

	org := Organization{Name: "Acme", Slug: "acme", Email: "a@acme.example"}
	require.NoError(t, db.Create(&org).Error)

	require.NoError(t, db.Create(&User{OrganizationID: org.ID, Name: "Jane", Email: "jane@acme.example", Role: RoleAdmin}).Error)
	err := db.Create(&User{OrganizationID: org.ID, Name: "Dup", Email: "jane@acme.example", Role: RoleAdmin}).Error
	require.Error(t, err)
}

func TestValidOrgStatus(t *testing.T) {
	require.True(t, ValidOrgStatus(OrgStatusActive))
	require.True(t, ValidOrgStatus(OrgStatusBlocked))
	require.True(t, ValidOrgStatus(OrgStatusInactive))
	require.False(t, ValidOrgStatus("suspended"))
	require.False(t, ValidOrgStatus(""))
	require.False(t, ValidOrgStatus("Active"))
}

func TestValidUserRole(t *testing.T) {
	require.True(t, ValidUserRole(RoleAdmin))
	require.True(t, ValidUserRole(RoleCoordinator))
	require.False(t, ValidUserRole("Coordinator"))
	require.False(t, ValidUserRole("admin"))
	require.False(t, ValidUserRole(""))
}
