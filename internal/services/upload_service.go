package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"cityinbox_backend/internal/imageprocessor"
	"cityinbox_backend/internal/logger"
	"cityinbox_backend/internal/storage"
	"cityinbox_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// uploadFolders maps an upload kind to its storage subdirectory. The
// kind doubles as the access check: handlers pass the kind their route
// is allowed to write.
var uploadFolders = map[string]string{
	"vendor":       "vendors",
	"category":     "categories",
	"subcategory":  "subcategories",
	"sales":        "sales",
	"slider":       "sliders",
	"notification": "notifications",
	"document":     "documents",
}

type UploadService interface {
	// UploadFile validates and stores one multipart file, returning its
	// stored path and public URL. Image uploads also get a thumbnail
	// variant stored next to the original.
	UploadFile(ctx context.Context, kind string, file *multipart.FileHeader) (*UploadResult, error)
	DeleteFile(ctx context.Context, path string) error
}

// UploadResult describes a stored file.
type UploadResult struct {
	Path      string `json:"path"`
	URL       string `json:"url"`
	Size      int64  `json:"size"`
	ThumbPath string `json:"thumb_path,omitempty"`
	ThumbURL  string `json:"thumb_url,omitempty"`
}

type UploadServiceImpl struct {
	store        storage.Storage
	processor    *imageprocessor.Processor
	maxSize      int64
	allowedTypes map[string]bool
}

func NewUploadService(store storage.Storage, processor *imageprocessor.Processor, maxSize int64, allowedTypes []string) UploadService {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}
	return &UploadServiceImpl{
		store:        store,
		processor:    processor,
		maxSize:      maxSize,
		allowedTypes: allowed,
	}
}

func (s *UploadServiceImpl) UploadFile(ctx context.Context, kind string, file *multipart.FileHeader) (*UploadResult, error) {
	folder, ok := uploadFolders[kind]
	if !ok {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown upload kind: %s", kind))
	}

	if file.Size > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !s.allowedTypes[contentType] {
		return nil, apperrors.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	// Size is bounded by maxSize; buffering lets us store the original
	// and feed the thumbnail pass from the same bytes.
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString()
	path := fmt.Sprintf("%s/%s%s", folder, name, ext)

	if err := s.store.Save(ctx, path, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &UploadResult{
		Path: path,
		URL:  url,
		Size: file.Size,
	}

	if imageprocessor.CanProcess(contentType) {
		s.storeThumbnail(ctx, result, folder, name, ext, contentType, data)
	}

	return result, nil
}

// storeThumbnail is best effort: a thumbnail failure keeps the original
// upload and is only logged.
func (s *UploadServiceImpl) storeThumbnail(ctx context.Context, result *UploadResult, folder, name, ext, contentType string, data []byte) {
	thumb, err := s.processor.Thumbnail(bytes.NewReader(data))
	if err != nil {
		logger.Warn("thumbnail generation failed", "path", result.Path, "error", err.Error())
		return
	}

	thumbPath := fmt.Sprintf("%s/%s_thumb%s", folder, name, ext)
	if err := s.store.Save(ctx, thumbPath, thumb, contentType); err != nil {
		logger.Warn("thumbnail store failed", "path", thumbPath, "error", err.Error())
		return
	}

	thumbURL, err := s.store.GetURL(ctx, thumbPath)
	if err != nil {
		logger.Warn("thumbnail url lookup failed", "path", thumbPath, "error", err.Error())
		return
	}

	result.ThumbPath = thumbPath
	result.ThumbURL = thumbURL
}

func (s *UploadServiceImpl) DeleteFile(ctx context.Context, path string) error {
	// Refuse anything that could escape the upload folders.
	clean := filepath.ToSlash(filepath.Clean(path))
	if strings.HasPrefix(clean, "..") || strings.HasPrefix(clean, "/") {
		return apperrors.NewBadRequestError("Invalid file path")
	}
	if err := s.store.Delete(ctx, clean); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
