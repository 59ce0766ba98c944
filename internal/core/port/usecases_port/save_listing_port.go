package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type SaveListingUseCase interface {
	Execute(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
}
