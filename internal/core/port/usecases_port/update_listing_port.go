package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

// Actor - кто выполняет операцию. Идентичность разрешает внешний
// auth-сервис, ядро получает ее явным параметром.
type Actor struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// UpdateListingUseCase - правка объявления владельцем или админом.
type UpdateListingUseCase interface {
	Execute(ctx context.Context, actor Actor, id uuid.UUID, patch port.ListingPatch) (*domain.Listing, error)
}
