package port

import (
	"context"
	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// ListingPatch - частичное обновление объявления. nil-поля не трогаются.
type ListingPatch struct {
	Title       *string
	Type        *domain.ListingType
	Price       *float64
	Currency    *string
	Address     *string
	City        *string
	State       *string
	Zip         *string
	Bedrooms    *float64
	Bathrooms   *float64
	Sqft        *float64
	Description *string
	Images      []string
}

// ListingStoragePort - контракт хранилища объявлений (внешний коллаборатор,
// ядро не знает про postgres). GetByID возвращает domain.ErrListingNotFound,
// если объявления нет.
type ListingStoragePort interface {
	List(ctx context.Context, status domain.ListingStatus) ([]domain.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Listing, error)
	Create(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
	Update(ctx context.Context, id uuid.UUID, patch ListingPatch) (*domain.Listing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
