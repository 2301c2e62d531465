package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"autohub/models"

	"github.com/google/uuid"
)

// MaxUploadFiles caps how many images one request may attach.
const MaxUploadFiles = 10

type UploadService interface {
	Store(files []*multipart.FileHeader) ([]string, error)
}

type uploadService struct {
	dir string
}

// NewUploadService stores uploads under dir and serves them at /uploads.
func NewUploadService(dir string) UploadService {
	return &uploadService{dir: dir}
}

// Store writes each file under a generated name and returns the public paths
// in the same order the files were supplied. It knows nothing about listings;
// the caller attaches the paths to a record.
func (s *uploadService) Store(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, models.ErrorValidation{Message: "at least one file is required"}
	}
	if len(files) > MaxUploadFiles {
		return nil, models.ErrorValidation{Message: fmt.Sprintf("at most %d files per upload", MaxUploadFiles)}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, models.ErrorInternalServer{Message: "file store unavailable"}
	}

	paths := make([]string, 0, len(files))
	for _, header := range files {
		name := generateFilename(header.Filename)
		if err := s.saveFile(header, filepath.Join(s.dir, name)); err != nil {
			return nil, err
		}
		paths = append(paths, "/uploads/"+name)
	}

	return paths, nil
}

func (s *uploadService) saveFile(header *multipart.FileHeader, dst string) error {
	src, err := header.Open()
	if err != nil {
		return models.ErrorInternalServer{Message: "cannot open uploaded file"}
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return models.ErrorInternalServer{Message: "file store unavailable"}
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return models.ErrorInternalServer{Message: "failed to write uploaded file"}
	}

	return nil
}

// generateFilename combines a nanosecond timestamp with a short random suffix
// and the original extension. The suffix guards against two files landing on
// the same nanosecond within a batch.
func generateFilename(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
}
