package port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// ListingEventsPort - исходящие события жизненного цикла объявлений
// для downstream-потребителей (индексация, уведомления).
// Публикация best-effort: сбой события не откатывает сохранение.
type ListingEventsPort interface {
	PublishListingSaved(ctx context.Context, listing domain.Listing) error
	PublishStatusChanged(ctx context.Context, listingID uuid.UUID, status domain.ListingStatus) error
	PublishListingDeleted(ctx context.Context, listingID uuid.UUID) error
}
