package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"yaadjobs_backend/internal/storage"
	"yaadjobs_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadConfig bounds what the upload endpoint accepts.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// UploadService stores resumes and avatars and hands back public URLs
// for use in profiles and applications.
type UploadService struct {
	store  storage.Storage
	config UploadConfig
}

func NewUploadService(store storage.Storage, config UploadConfig) *UploadService {
	return &UploadService{store: store, config: config}
}

var uploadKinds = map[string]bool{
	"resume": true,
	"avatar": true,
}

// Upload validates and stores a file, returning its public URL.
func (s *UploadService) Upload(ctx context.Context, userID, kind, filename, contentType string, size int64, r io.Reader) (string, error) {
	if !uploadKinds[kind] {
		return "", apperrors.NewBadRequestError("kind must be resume or avatar")
	}

	if size > s.config.MaxSize {
		return "", apperrors.New(
			apperrors.CodeValidationFailed, "upload",
			fmt.Sprintf("File exceeds the %d byte limit", s.config.MaxSize),
			http.StatusRequestEntityTooLarge,
		)
	}

	if !s.typeAllowed(contentType) {
		return "", apperrors.New(
			apperrors.CodeValidationFailed, "upload",
			"File type is not allowed",
			http.StatusUnsupportedMediaType,
		)
	}

	path := fmt.Sprintf("%ss/%s/%s%s", kind, userID, uuid.NewString(), filepath.Ext(filename))
	if err := s.store.Save(ctx, path, r, contentType); err != nil {
		return "", apperrors.StoreError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", apperrors.StoreError(err)
	}
	return url, nil
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
