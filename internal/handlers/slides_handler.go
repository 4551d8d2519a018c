package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumeslide/internal/store"
)

type SlidesHandler struct {
	slideStore store.SlideStore
}

func NewSlidesHandler(slideStore store.SlideStore) *SlidesHandler {
	return &SlidesHandler{
		slideStore: slideStore,
	}
}

// HandleListSlides handles GET /api/slides, returning every persisted slide
// record most-recent-first.
func (h *SlidesHandler) HandleListSlides(c *fiber.Ctx) error {
	records, err := h.slideStore.ListAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(records)
}
