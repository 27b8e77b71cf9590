package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
)

func TestMigrateCreatesTables(t *testing.T) {
	db := dbtest.Open(t)

	for _, table := range []string{"admins", "user", "properties", "checklist", "system_logs"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
	require.NoError(t, database.Ping(context.Background(), db))
}

func TestNullStatusReadsAsActive(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, db.Exec(
		"INSERT INTO `user` (name, email, phone, password, occupation, address, status) VALUES (?, ?, ?, ?, ?, ?, NULL)",
		"A", "a@x.com", "1", "h", "o", "a",
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO `user` (name, email, phone, password, occupation, address, status) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"B", "b@x.com", "2", "h", "o", "a", "blocked",
	).Error)

	require.NoError(t, db.Exec(
		"INSERT INTO `user` (name, email, phone, password, occupation, address, status) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"C", "c@x.com", "3", "h", "o", "a", "",
	).Error)

	var users []models.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 3)
	assert.Equal(t, models.StatusActive, users[0].Status)
	assert.Equal(t, models.StatusBlocked, users[1].Status)
	assert.Equal(t, models.StatusActive, users[2].Status)

	var one models.User
	require.NoError(t, db.Select("id", "status").First(&one, users[0].ID).Error)
	assert.Equal(t, models.StatusActive, one.Status)
}
