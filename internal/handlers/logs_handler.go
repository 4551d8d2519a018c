package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeslide/internal/apperrors"
	"resumeslide/internal/models"
	"resumeslide/internal/store"
)

type LogsHandler struct {
	logStore store.LogStore
}

func NewLogsHandler(logStore store.LogStore) *LogsHandler {
	return &LogsHandler{
		logStore: logStore,
	}
}

// HandleAppendLog handles POST /api/log, the fire-and-forget client
// telemetry channel.
func (h *LogsHandler) HandleAppendLog(c *fiber.Ctx) error {
	var req models.LogRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewInputError("Invalid request payload"))
	}

	entry := models.LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    req.Action,
		Details:   req.Details,
	}

	if err := h.logStore.Append(entry); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.LogResponse{Success: true})
}

// HandleListLogs handles GET /api/docs, returning every log entry in
// insertion order.
func (h *LogsHandler) HandleListLogs(c *fiber.Ctx) error {
	entries, err := h.logStore.ListAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(entries)
}
