package filestore_adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

// LocalFileStorage сохраняет вложения на локальный диск.
// Структура каталогов: <baseDir>/<ownerID>/<uuid><ext>.
type LocalFileStorage struct {
	baseDir       string
	publicBaseURL string
}

func NewLocalFileStorage(baseDir, publicBaseURL string) (*LocalFileStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("filestore adapter: baseDir cannot be empty")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore adapter: failed to create base dir: %w", err)
	}
	return &LocalFileStorage{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (s *LocalFileStorage) Store(ctx context.Context, ownerID uuid.UUID, name string, kind domain.AttachmentKind, size int64, content io.Reader) (*domain.StoredAttachment, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "LocalFileStorage",
		"owner_id":  ownerID.String(),
	})

	ownerDir := filepath.Join(s.baseDir, ownerID.String())
	if err := os.MkdirAll(ownerDir, 0o755); err != nil {
		logger.Error("Failed to create owner directory", err, nil)
		return nil, &domain.RemoteError{Op: "store", Err: err}
	}

	// Имя на диске не зависит от пользовательского, берем только расширение
	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(name))
	fullPath := filepath.Join(ownerDir, storedName)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error("Failed to create file", err, nil)
		return nil, &domain.RemoteError{Op: "store", Err: err}
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(content, domain.MaxAttachmentSize+1))
	if err != nil {
		os.Remove(fullPath)
		logger.Error("Failed to write file", err, nil)
		return nil, &domain.RemoteError{Op: "store", Err: err}
	}
	if written > domain.MaxAttachmentSize {
		os.Remove(fullPath)
		return nil, &domain.ValidationError{Field: "size", Reason: "file size must be less than 10MB"}
	}

	logger.Debug("Stored attachment", port.Fields{"path": fullPath, "size": written})

	return &domain.StoredAttachment{
		URL:  fmt.Sprintf("%s/uploads/%s/%s", s.publicBaseURL, ownerID.String(), storedName),
		Kind: kind,
		Name: name,
		Size: written,
	}, nil
}
