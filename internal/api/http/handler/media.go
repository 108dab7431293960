package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

// MediaService opens stored images.
type MediaService interface {
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// Media serves uploaded images to logged users.
type Media struct {
	media  MediaService
	guard  Authorizer
	logger *logger.Logger
}

// NewMedia creates a new Media handler.
func NewMedia(media MediaService, guard Authorizer, logger *logger.Logger) *Media {
	return &Media{
		media:  media,
		guard:  guard,
		logger: logger,
	}
}

// Get streams the object named by the key path parameter.
func (h *Media) Get(c *gin.Context) {
	if _, ok := authorize(c, h.guard, c.Query("userEmail"), model.RoleUnset); !ok {
		return
	}

	key := c.Param("key")
	rc, contentType, err := h.media.Open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			reply(c, http.StatusNotFound, 3, "Image not found")
			return
		}
		h.logger.Error("Media handler: open failed",
			"key", key,
			"error", err.Error())
		internalError(c, 1)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}
