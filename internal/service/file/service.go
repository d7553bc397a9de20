package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/awash-hr/job-portal/internal/pkg/storage"
	"github.com/google/uuid"
)

var (
	ErrInvalidFileType = errors.New("invalid file type: only pdf, doc, docx, jpg, jpeg, png allowed")
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
)

var letterExts = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

type FileService interface {
	// UploadRecommendationLetter stores an application attachment and
	// returns its storage key.
	UploadRecommendationLetter(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// Generic operations
	OpenFile(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
	maxSize int64
}

func NewFileService(storage storage.FileStorage, maxSize int64) FileService {
	return &fileServiceImpl{
		storage: storage,
		maxSize: maxSize,
	}
}

// UploadRecommendationLetter uploads an applicant's recommendation letter
func (s *fileServiceImpl) UploadRecommendationLetter(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(letterExts, ext) {
		return "", ErrInvalidFileType
	}

	// Read one byte past the limit to detect oversized uploads
	limited := &io.LimitedReader{R: file, N: s.maxSize + 1}

	// Employee ids may contain '/', keep them out of the directory layout
	owner := strings.NewReplacer("/", "-", "\\", "-").Replace(employeeID)
	key := path.Join("recommendation_letters", owner, uuid.NewString()+ext)

	uploaded, err := s.storage.Upload(ctx, limited, key)
	if err != nil {
		return "", fmt.Errorf("failed to upload recommendation letter: %w", err)
	}
	if limited.N == 0 {
		if delErr := s.storage.Delete(ctx, uploaded); delErr != nil {
			return "", fmt.Errorf("%w (cleanup failed: %v)", ErrFileTooLarge, delErr)
		}
		return "", ErrFileTooLarge
	}

	return uploaded, nil
}

func (s *fileServiceImpl) OpenFile(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, key)
}

// DeleteFile deletes a file from storage
func (s *fileServiceImpl) DeleteFile(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

func (s *fileServiceImpl) Exists(ctx context.Context, key string) (bool, error) {
	return s.storage.Exists(ctx, key)
}
