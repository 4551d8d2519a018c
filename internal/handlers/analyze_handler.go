package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeslide/internal/apperrors"
	"resumeslide/internal/models"
	"resumeslide/internal/services"
	"resumeslide/internal/store"
)

// minTextLength is the threshold below which extracted text is considered
// insufficient to analyze.
const minTextLength = 50

type AnalyzeHandler struct {
	storageService services.StorageService
	extractor      services.ExtractorService
	analyzer       services.AnalyzerService
	slideStore     store.SlideStore
	logStore       store.LogStore
	maxFileSize    int64
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	extractor services.ExtractorService,
	analyzer services.AnalyzerService,
	slideStore store.SlideStore,
	logStore store.LogStore,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storageService: storageService,
		extractor:      extractor,
		analyzer:       analyzer,
		slideStore:     slideStore,
		logStore:       logStore,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /api/analyze. The uploaded document exists only
// for the duration of this request; the deferred delete runs on every exit
// path, success or failure.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperrors.NewInputError("No file uploaded"))
	}

	if fileHeader.Size > h.maxFileSize {
		return respondError(c, apperrors.NewInputError("File too large. Max size: %d bytes", h.maxFileSize))
	}

	_, filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		return respondError(c, err)
	}
	defer func() {
		if err := h.storageService.DeleteFile(filePath); err != nil {
			log.Printf("⚠️ Failed to remove temp upload %s: %v", filePath, err)
		}
	}()

	text, err := h.extractor.Extract(filePath, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return respondError(c, err)
	}

	if len(text) < minTextLength {
		return respondError(c, apperrors.NewInputError("Could not extract sufficient text."))
	}

	result, err := h.analyzer.Analyze(c.UserContext(), text)
	if err != nil {
		return respondError(c, err)
	}

	now := time.Now()
	record := models.SlideRecord{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Timestamp: now.UTC().Format(time.RFC3339),
		FileName:  fileHeader.Filename,
		Data:      *result,
	}

	if err := h.slideStore.Append(record); err != nil {
		return respondError(c, err)
	}

	// Best-effort activity trail; a log failure never fails the analysis.
	h.logBestEffort("Resume Analyzed", fiber.Map{
		"fileName": fileHeader.Filename,
		"slideId":  record.ID,
	})

	log.Printf("✅ [Analyzed] %s", fileHeader.Filename)

	return c.JSON(result)
}

func (h *AnalyzeHandler) logBestEffort(action string, details interface{}) {
	entry := models.LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    action,
		Details:   details,
	}
	if err := h.logStore.Append(entry); err != nil {
		log.Printf("⚠️ Failed to append activity log: %v", err)
	}
}
