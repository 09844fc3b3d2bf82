package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "niknaks/internal/log"
	"niknaks/internal/services"
)

type MediaHandler struct {
	Media *services.MediaService
}

func (h *MediaHandler) Videos(c *fiber.Ctx) error {
	groups, err := h.Media.VideoGroups()
	if err != nil {
		applog.Error(c, "videos.error", err, nil)
		return err
	}
	return render(c, "videos", fiber.Map{"Groups": groups})
}
