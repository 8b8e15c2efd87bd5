package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homez-ar/api/internal/logger"
)

var (
	ErrInvalidUploadKind = errors.New("invalid upload kind")
	ErrInvalidFileType   = errors.New("invalid file type")
	ErrFileTooLarge      = errors.New("file too large")
)

const maxUploadSize = 5 << 20 // 5 MB

// Per-kind content type whitelists. Favicons additionally accept ICO.
var uploadMimeTypes = map[string]map[string]string{
	"logo": {
		"image/png":     ".png",
		"image/jpeg":    ".jpg",
		"image/svg+xml": ".svg",
		"image/webp":    ".webp",
	},
	"favicon": {
		"image/png":                ".png",
		"image/x-icon":             ".ico",
		"image/vnd.microsoft.icon": ".ico",
		"image/svg+xml":            ".svg",
	},
}

// UploadService stores admin-uploaded branding assets (logo, favicon) on the
// local filesystem and returns the public URL path they are served under.
type UploadService interface {
	Save(c *gin.Context, kind string, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	dir string
	log *logger.Logger
}

// NewUploadService creates a new UploadService storing files under dir.
func NewUploadService(dir string, log *logger.Logger) UploadService {
	return &uploadService{dir: dir, log: log}
}

func (s *uploadService) Save(c *gin.Context, kind string, file *multipart.FileHeader) (string, error) {
	allowed, ok := uploadMimeTypes[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidUploadKind, kind)
	}
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, file.Size)
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowed[contentType]
	if !ok {
		s.log.Warn("Rejected upload with disallowed content type", map[string]interface{}{
			"kind":         kind,
			"content_type": contentType,
		})
		return "", fmt.Errorf("%w: %s", ErrInvalidFileType, contentType)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d%s", kind, time.Now().UnixMilli(), ext)
	dest := filepath.Join(s.dir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		s.log.Error("Failed to store uploaded file", err, map[string]interface{}{
			"dest": dest,
		})
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	s.log.Info("Stored upload", map[string]interface{}{
		"kind": kind,
		"file": name,
	})
	return "/uploads/" + strings.TrimPrefix(name, "/"), nil
}
