package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"vrmhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAuditService(t *testing.T) {
	db := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	service := NewAuditService(db, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)

	t.Run("Log Action", func(t *testing.T) {
		userID := uint(1)
		service.LogAction(&userID, "UPLOAD_MODEL", "model_1", map[string]string{"name": "avatar"}, "127.0.0.1")

		// Wait for worker to process
		time.Sleep(100 * time.Millisecond)

		var entry models.AuditLog
		err := db.First(&entry).Error
		assert.NoError(t, err)
		assert.Equal(t, "UPLOAD_MODEL", entry.Action)
		assert.Equal(t, "model_1", entry.EntityID)
		assert.Contains(t, entry.Details, "avatar")
	})

	t.Run("Nil Details", func(t *testing.T) {
		service.LogAction(nil, "LOGIN", "user@example.com", nil, "127.0.0.1")

		time.Sleep(100 * time.Millisecond)

		var entry models.AuditLog
		err := db.Where("action = ?", "LOGIN").First(&entry).Error
		assert.NoError(t, err)
		// No details given, none recorded (not the JSON literal "null")
		assert.Equal(t, "", entry.Details)
	})

	t.Run("Channel Full", func(t *testing.T) {
		full := NewAuditService(db, logger)
		// No worker running: fill the channel, the next call must not block
		for i := 0; i < 100; i++ {
			full.LogAction(nil, "ACTION", "ID", nil, "IP")
		}
		full.LogAction(nil, "DROP", "ID", nil, "IP")
	})
}
