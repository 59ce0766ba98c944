package usecase

import (
	"context"
	"io"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type UploadAttachmentUseCase struct {
	files port.FileStoragePort
}

func NewUploadAttachmentUseCase(files port.FileStoragePort) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{files: files}
}

// Execute валидирует файл (потолок 10MB, закрытый список MIME-типов)
// и отдает его файловому хранилищу. Возвращает публичный URL вложения.
func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, ownerID uuid.UUID, name, contentType string, size int64, content io.Reader) (*domain.StoredAttachment, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "UploadAttachment",
		"owner_id":     ownerID,
		"file_name":    name,
		"content_type": contentType,
		"size_bytes":   size,
	})

	ucLogger.Info("Use case started", nil)

	kind, err := domain.ClassifyAttachment(contentType, size)
	if err != nil {
		ucLogger.Warn("Attachment rejected by validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	stored, err := uc.files.Store(ctx, ownerID, name, kind, size, content)
	if err != nil {
		ucLogger.Error("File storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"url":  stored.URL,
		"kind": stored.Kind,
	})

	return stored, nil
}
