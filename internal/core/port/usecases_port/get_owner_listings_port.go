package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// GetOwnerListingsUseCase - объявления владельца для личного кабинета
// (включая черновики и архив).
type GetOwnerListingsUseCase interface {
	Execute(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error)
}
