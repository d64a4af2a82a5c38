package repository_test

import (
	"testing"
	"time"

	"github.com/congregate-app/congregate/internal/db"
	"github.com/congregate-app/congregate/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory SQLite database with migrations applied.
// A single connection keeps the memory database alive and shared.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

func testUser(username string) *model.User {
	return &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role:         model.RoleMember,
		CreatedAt:    time.Now(),
	}
}
