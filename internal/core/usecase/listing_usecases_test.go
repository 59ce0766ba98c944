package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListingStorage - хранилище объявлений в памяти для тестов use case.
type fakeListingStorage struct {
	mu       sync.Mutex
	listings map[uuid.UUID]domain.Listing

	// Запоминаем, с каким статусом пришел последний List
	lastListStatus domain.ListingStatus
	failList       error
}

func newFakeListingStorage(listings ...domain.Listing) *fakeListingStorage {
	s := &fakeListingStorage{listings: make(map[uuid.UUID]domain.Listing)}
	for _, l := range listings {
		s.listings[l.ID] = l
	}
	return s
}

func (s *fakeListingStorage) List(ctx context.Context, status domain.ListingStatus) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastListStatus = status
	if s.failList != nil {
		return nil, s.failList
	}
	var out []domain.Listing
	for _, l := range s.listings {
		if status == "" || l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeListingStorage) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &l, nil
}

func (s *fakeListingStorage) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Listing
	for _, l := range s.listings {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeListingStorage) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Listing
	for _, id := range ids {
		if l, ok := s.listings[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeListingStorage) Create(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	s.listings[listing.ID] = listing
	return &listing, nil
}

func (s *fakeListingStorage) Update(ctx context.Context, id uuid.UUID, patch port.ListingPatch) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	if patch.Title != nil {
		l.Title = *patch.Title
	}
	if patch.Price != nil {
		l.Price = *patch.Price
	}
	if patch.Type != nil {
		l.Type = *patch.Type
	}
	s.listings[id] = l
	return &l, nil
}

func (s *fakeListingStorage) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	l.Status = status
	s.listings[id] = l
	return nil
}

func (s *fakeListingStorage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(s.listings, id)
	return nil
}

func published(title string, price float64) domain.Listing {
	return domain.Listing{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   title,
		Type:    domain.TypeApartment,
		Price:   price,
		City:    "Austin",
		Status:  domain.StatusPublished,
	}
}

func TestFindListingsQueriesOnlyPublished(t *testing.T) {
	draft := published("draft", 1000)
	draft.Status = domain.StatusDraft
	storage := newFakeListingStorage(published("a", 1400), published("b", 2400), draft)
	uc := NewFindListingsUseCase(storage)

	got, err := uc.Execute(context.Background(), domain.FilterCriteria{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPublished, storage.lastListStatus)
	assert.Len(t, got, 2)
}

func TestFindListingsAppliesCriteria(t *testing.T) {
	storage := newFakeListingStorage(published("cheap", 1400), published("pricey", 6000))
	uc := NewFindListingsUseCase(storage)

	max := 5000.0
	got, err := uc.Execute(context.Background(), domain.FilterCriteria{Price: domain.PriceRange{Max: &max}})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "cheap", got[0].Title)
}

func TestFindListingsPropagatesStorageError(t *testing.T) {
	storage := newFakeListingStorage()
	storage.failList = errors.New("pool exhausted")
	uc := NewFindListingsUseCase(storage)

	_, err := uc.Execute(context.Background(), domain.FilterCriteria{})
	assert.Error(t, err)
}

func TestGetSimilarListingsUsesFullPool(t *testing.T) {
	ref := published("reference", 2000)
	other := published("candidate", 2100)
	storage := newFakeListingStorage(ref, other)
	uc := NewGetSimilarListingsUseCase(storage)

	got, err := uc.Execute(context.Background(), ref.ID, 4)
	require.NoError(t, err)

	// Пул запрашивается без фильтра по статусу: образец может быть черновиком
	assert.Equal(t, domain.ListingStatus(""), storage.lastListStatus)
	require.Len(t, got, 1)
	assert.Equal(t, "candidate", got[0].Title)
}

func TestGetSimilarListingsUnknownReference(t *testing.T) {
	storage := newFakeListingStorage(published("a", 1000))
	uc := NewGetSimilarListingsUseCase(storage)

	_, err := uc.Execute(context.Background(), uuid.New(), 4)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestSaveListingAddsCoverOnlyWhenPublished(t *testing.T) {
	storage := newFakeListingStorage()
	uc := NewSaveListingUseCase(storage, nil)

	saved, err := uc.Execute(context.Background(), domain.Listing{
		OwnerID: uuid.New(),
		Title:   "published without images",
		Type:    domain.TypeHouse,
		Price:   1500,
		Status:  domain.StatusPublished,
	})
	require.NoError(t, err)
	require.Len(t, saved.Images, 1)
	assert.Equal(t, domain.PlaceholderImageURL, saved.Images[0])

	draft, err := uc.Execute(context.Background(), domain.Listing{
		OwnerID: uuid.New(),
		Title:   "draft without images",
		Type:    domain.TypeHouse,
		Price:   1500,
		Status:  domain.StatusDraft,
	})
	require.NoError(t, err)
	assert.Empty(t, draft.Images)
}

func TestSaveListingRejectsInvalid(t *testing.T) {
	uc := NewSaveListingUseCase(newFakeListingStorage(), nil)

	_, err := uc.Execute(context.Background(), domain.Listing{
		OwnerID: uuid.New(),
		Title:   "",
		Type:    domain.TypeHouse,
		Price:   1500,
		Status:  domain.StatusDraft,
	})

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateListingPermissions(t *testing.T) {
	l := published("owned", 2000)
	storage := newFakeListingStorage(l)
	uc := NewUpdateListingUseCase(storage, nil)
	newTitle := "renamed"

	// Чужой пользователь без роли админа получает отказ
	_, err := uc.Execute(context.Background(),
		usecases_port.Actor{UserID: uuid.New(), Role: domain.RoleLandlord},
		l.ID, port.ListingPatch{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	// Владелец может
	updated, err := uc.Execute(context.Background(),
		usecases_port.Actor{UserID: l.OwnerID, Role: domain.RoleLandlord},
		l.ID, port.ListingPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	// Админ тоже может
	adminTitle := "admin renamed"
	updated, err = uc.Execute(context.Background(),
		usecases_port.Actor{UserID: uuid.New(), Role: domain.RoleAdmin},
		l.ID, port.ListingPatch{Title: &adminTitle})
	require.NoError(t, err)
	assert.Equal(t, "admin renamed", updated.Title)
}

func TestUpdateListingRejectsNegativePrice(t *testing.T) {
	l := published("owned", 2000)
	storage := newFakeListingStorage(l)
	uc := NewUpdateListingUseCase(storage, nil)

	bad := -100.0
	_, err := uc.Execute(context.Background(),
		usecases_port.Actor{UserID: l.OwnerID, Role: domain.RoleLandlord},
		l.ID, port.ListingPatch{Price: &bad})

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateListingStatusUnknownListing(t *testing.T) {
	uc := NewUpdateListingStatusUseCase(newFakeListingStorage(), nil)

	err := uc.Execute(context.Background(),
		usecases_port.Actor{UserID: uuid.New(), Role: domain.RoleAdmin},
		uuid.New(), domain.StatusArchived)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestDeleteListingOnlyByOwnerOrAdmin(t *testing.T) {
	l := published("to delete", 2000)
	storage := newFakeListingStorage(l)
	uc := NewDeleteListingUseCase(storage, nil)

	err := uc.Execute(context.Background(),
		usecases_port.Actor{UserID: uuid.New(), Role: domain.RoleTenant}, l.ID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = uc.Execute(context.Background(),
		usecases_port.Actor{UserID: l.OwnerID, Role: domain.RoleLandlord}, l.ID)
	require.NoError(t, err)

	_, err = storage.GetByID(context.Background(), l.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestGetUserFavoritesCollectsCards(t *testing.T) {
	first := published("first favorite", 1000)
	second := published("second favorite", 2000)
	storage := newFakeListingStorage(first, second, published("not favorited", 3000))

	favorites := newFakeFavoritesRepo()
	userID := uuid.New()
	require.NoError(t, favorites.Add(context.Background(), userID, first.ID))
	require.NoError(t, favorites.Add(context.Background(), userID, second.ID))

	uc := NewGetUserFavoritesUseCase(favorites, storage)
	got, err := uc.Execute(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetUserFavoritesEmpty(t *testing.T) {
	uc := NewGetUserFavoritesUseCase(newFakeFavoritesRepo(), newFakeListingStorage())

	got, err := uc.Execute(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetUserFavoritesWrapsRepositoryError(t *testing.T) {
	uc := NewGetUserFavoritesUseCase(&failingFavoritesRepo{}, newFakeListingStorage())

	_, err := uc.Execute(context.Background(), uuid.New())

	var remoteErr *domain.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "listForUser", remoteErr.Op)
}

// failingFavoritesRepo всегда отказывает, для проверки оборачивания ошибок.
type failingFavoritesRepo struct{}

func (r *failingFavoritesRepo) IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	return false, errors.New("unavailable")
}

func (r *failingFavoritesRepo) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	return errors.New("unavailable")
}

func (r *failingFavoritesRepo) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	return errors.New("unavailable")
}

func (r *failingFavoritesRepo) FindFavoriteIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return nil, errors.New("unavailable")
}

func TestEstimateMortgageUseCaseDelegatesToDomain(t *testing.T) {
	uc := NewEstimateMortgageUseCase()

	est, err := uc.Execute(context.Background(), usecases_port.MortgageRequest{
		Price:                     300000,
		DownPaymentPercent:        20,
		AnnualInterestRatePercent: 6,
		LoanTermYears:             30,
	})
	require.NoError(t, err)
	assert.Equal(t, 240000.0, est.LoanAmount)

	_, err = uc.Execute(context.Background(), usecases_port.MortgageRequest{
		Price: -1, DownPaymentPercent: 20, AnnualInterestRatePercent: 6, LoanTermYears: 30,
	})
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
