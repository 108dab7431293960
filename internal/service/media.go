package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

// MediaURLPrefix is the public path stored images are served under.
const MediaURLPrefix = "/API/media/"

// Image kinds, used as the first object key segment.
const (
	MediaVolunteerPhoto   = "volunteers"
	MediaAssociationLogo  = "associations"
	MediaEventPosterImage = "events"
)

// Media moves base64 images submitted by clients into object storage.
type Media struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewMedia(storage model.Storage, logger *logger.Logger) *Media {
	return &Media{
		storage: storage,
		logger:  logger,
	}
}

// Store uploads value when it is a base64 image (optionally a data URI) and returns
// the public reference to persist instead. Other values are returned unchanged.
func (m *Media) Store(ctx context.Context, kind, value string) (string, error) {
	data, contentType, ok := decodeImage(value)
	if !ok {
		return value, nil
	}

	key := path.Join(kind, uuid.NewString()+imageExtension(contentType))
	if err := m.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		m.logger.Error("Media service: failed to upload image",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	m.logger.Debug("Media service: image stored",
		"key", key,
		"content_type", contentType,
		"size", len(data))

	return MediaURLPrefix + key, nil
}

// Release deletes the object behind ref when ref points to stored media.
// Failures are logged; the reference is already detached from its owner.
func (m *Media) Release(ctx context.Context, ref *string) {
	if ref == nil || !strings.HasPrefix(*ref, MediaURLPrefix) {
		return
	}

	key := strings.TrimPrefix(*ref, MediaURLPrefix)
	if err := m.storage.Delete(ctx, key); err != nil {
		m.logger.Warn("Media service: failed to delete replaced image",
			"key", key,
			"error", err.Error())
	}
}

// Open returns the stored object for key.
func (m *Media) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, "", model.ErrNotFound
	}

	exists, err := m.storage.Exists(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check image: %w", err)
	}
	if !exists {
		return nil, "", model.ErrNotFound
	}

	rc, err := m.storage.Download(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return rc, contentType, nil
}

// storeOptional runs Store on a present value.
func (m *Media) storeOptional(ctx context.Context, kind string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	ref, err := m.Store(ctx, kind, *value)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func decodeImage(value string) ([]byte, string, bool) {
	payload := value
	if rest, ok := strings.CutPrefix(value, "data:"); ok {
		meta, encoded, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(meta, ";base64") {
			return nil, "", false
		}
		payload = encoded
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, "", false
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", false
	}

	return data, contentType, true
}

func imageExtension(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	for _, ext := range exts {
		if ext == ".png" || ext == ".jpg" || ext == ".gif" || ext == ".webp" {
			return ext
		}
	}
	return exts[0]
}
