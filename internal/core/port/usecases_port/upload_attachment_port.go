package usecases_port

import (
	"context"
	"io"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// UploadAttachmentUseCase - валидация и сохранение вложения (фото,
// документ). Возвращает публичный URL и классификацию файла.
type UploadAttachmentUseCase interface {
	Execute(ctx context.Context, ownerID uuid.UUID, name, contentType string, size int64, content io.Reader) (*domain.StoredAttachment, error)
}
