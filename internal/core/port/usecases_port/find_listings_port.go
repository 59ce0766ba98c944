package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

// FindListingsUseCase - публичный поиск по опубликованным объявлениям.
type FindListingsUseCase interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error)
}
