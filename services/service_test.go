package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SairamGundeboina019/fitness-tracker/models"
)

// setupDB opens an in-memory sqlite database with the full schema.
// MaxOpenConns(1) keeps the pool on the single in-memory connection.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}, &models.Workout{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user, err := NewAuthService(db).Register(name, email, "pw123")
	require.NoError(t, err)
	return user
}
