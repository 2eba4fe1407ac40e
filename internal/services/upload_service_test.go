package services

import (
	"context"
	"strings"
	"testing"

	"yaadjobs_backend/internal/storage"
	"yaadjobs_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T) *UploadService {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)

	return NewUploadService(store, UploadConfig{
		MaxSize:      1024,
		AllowedTypes: []string{"application/pdf", "image/png"},
	})
}

func TestUploadService_Upload(t *testing.T) {
	svc := newUploadFixture(t)

	url, err := svc.Upload(context.Background(), "user-1", "resume", "cv.pdf", "application/pdf", 100, strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Contains(t, url, "resumes/user-1/")
	assert.Contains(t, url, ".pdf")
}

func TestUploadService_Upload_Rejections(t *testing.T) {
	svc := newUploadFixture(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "user-1", "virus", "x.pdf", "application/pdf", 100, strings.NewReader("x"))
	assert.Error(t, err)

	_, err = svc.Upload(ctx, "user-1", "resume", "x.pdf", "application/pdf", 2048, strings.NewReader("x"))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 413, appErr.HTTPCode)

	_, err = svc.Upload(ctx, "user-1", "resume", "x.exe", "application/octet-stream", 100, strings.NewReader("x"))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 415, appErr.HTTPCode)
}
