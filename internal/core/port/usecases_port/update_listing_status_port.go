package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// UpdateListingStatusUseCase - смена статуса (draft/published/archived),
// доступна только владельцу или админу.
type UpdateListingStatusUseCase interface {
	Execute(ctx context.Context, actor Actor, id uuid.UUID, status domain.ListingStatus) error
}
