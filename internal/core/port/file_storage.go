package port

import (
	"context"
	"io"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// FileStoragePort - контракт файлового хранилища вложений. Валидация
// размера и MIME-типа происходит в ядре до вызова Store.
type FileStoragePort interface {
	Store(ctx context.Context, ownerID uuid.UUID, name string, kind domain.AttachmentKind, size int64, content io.Reader) (*domain.StoredAttachment, error)
}
