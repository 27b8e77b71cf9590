package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
)

func TestDBHandlerStoresErrors(t *testing.T) {
	db := dbtest.Open(t)
	h := NewDBHandler(db, time.Hour)

	var buf bytes.Buffer
	logger := slog.New(NewMultiHandler(slog.NewJSONHandler(&buf, nil), h)).With("action", "create_property")

	logger.Info("listing served", "path", "/api/properties")
	logger.Error("request failed",
		"trace_id", "req-1",
		"method", "POST",
		"path", "/api/properties",
		"error", "boom",
		"latency_ms", 12.4,
		"table", "properties",
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "req-1", entry.TraceID)
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/api/properties", entry.Path)
	assert.Equal(t, "create_property", entry.Action)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 12, entry.LatencyMs)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, "properties", extra["table"])

	// Both records reach the stdout handler.
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))

	// Stop is safe to call twice.
	h.Stop()
}

func TestPurgeBefore(t *testing.T) {
	db := dbtest.Open(t)
	now := time.Now().UTC()

	old := models.SystemLog{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"}
	recent := models.SystemLog{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -1), Level: "ERROR", Message: "recent"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	deleted, err := PurgeBefore(context.Background(), db, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "recent", left[0].Message)
}
