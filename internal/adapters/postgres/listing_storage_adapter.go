package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingColumns = `id, owner_id, title, type, price, currency, address, city, state, zip,
	bedrooms, bathrooms, sqft, description, images, status, created_at`

// PostgresListingStorageAdapter - реализация ListingStoragePort для PostgreSQL.
type PostgresListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresListingStorageAdapter(pool *pgxpool.Pool) (*PostgresListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresListingStorageAdapter{pool: pool}, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	var typeStr, statusStr string
	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &typeStr, &l.Price, &l.Currency,
		&l.Address, &l.City, &l.State, &l.Zip,
		&l.Bedrooms, &l.Bathrooms, &l.Sqft, &l.Description, &l.Images,
		&statusStr, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Значения из БД проходят через те же парсеры, что и значения из API:
	// неизвестный enum - ошибка, а не молчаливый мусор в домене
	if l.Type, err = domain.ParseListingType(typeStr); err != nil {
		return nil, fmt.Errorf("corrupt listing row %s: %w", l.ID, err)
	}
	if l.Status, err = domain.ParseListingStatus(statusStr); err != nil {
		return nil, fmt.Errorf("corrupt listing row %s: %w", l.ID, err)
	}
	return &l, nil
}

func (a *PostgresListingStorageAdapter) collectRows(rows pgx.Rows) ([]domain.Listing, error) {
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during listings iteration: %w", err)
	}
	return listings, nil
}

// List возвращает объявления с заданным статусом, новые первыми.
// Пустой статус означает "все" (нужно матчеру похожих объявлений).
func (a *PostgresListingStorageAdapter) List(ctx context.Context, status domain.ListingStatus) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresListingStorageAdapter",
		"method":    "List",
		"status":    status,
	})

	query := `SELECT ` + listingColumns + ` FROM listings`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}

	listings, err := a.collectRows(rows)
	if err != nil {
		repoLogger.Error("Failed to collect listing rows", err, nil)
		return nil, err
	}

	repoLogger.Debug("Listings fetched", port.Fields{"count": len(listings)})
	return listings, nil
}

func (a *PostgresListingStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresListingStorageAdapter",
		"method":     "GetByID",
		"listing_id": id,
	})

	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	listing, err := scanListing(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Listing not found", nil)
			return nil, domain.ErrListingNotFound
		}
		repoLogger.Error("Failed to fetch listing", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	return listing, nil
}

func (a *PostgresListingStorageAdapter) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresListingStorageAdapter",
		"method":    "ListByOwner",
		"owner_id":  ownerID,
	})

	query := `SELECT ` + listingColumns + ` FROM listings WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, query, ownerID)
	if err != nil {
		repoLogger.Error("Failed to query owner listings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query owner listings: %w", err)
	}
	return a.collectRows(rows)
}

func (a *PostgresListingStorageAdapter) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresListingStorageAdapter",
		"method":    "ListByIDs",
		"ids_count": len(ids),
	})

	if len(ids) == 0 {
		return []domain.Listing{}, nil
	}

	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = ANY($1) ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, query, ids)
	if err != nil {
		repoLogger.Error("Failed to query listings by ids", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query listings by ids: %w", err)
	}
	return a.collectRows(rows)
}

func (a *PostgresListingStorageAdapter) Create(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresListingStorageAdapter",
		"method":    "Create",
		"owner_id":  listing.OwnerID,
	})

	query := `
		INSERT INTO listings (owner_id, title, type, price, currency, address, city, state, zip,
			bedrooms, bathrooms, sqft, description, images, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + listingColumns

	created, err := scanListing(a.pool.QueryRow(ctx, query,
		listing.OwnerID, listing.Title, string(listing.Type), listing.Price, listing.Currency,
		listing.Address, listing.City, listing.State, listing.Zip,
		listing.Bedrooms, listing.Bathrooms, listing.Sqft, listing.Description, listing.Images,
		string(listing.Status),
	))
	if err != nil {
		repoLogger.Error("Failed to insert listing", err, nil)
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	repoLogger.Debug("Listing inserted", port.Fields{"listing_id": created.ID})
	return created, nil
}

// Update собирает SET-часть запроса только из не-nil полей патча,
// по той же схеме нумерованных аргументов, что и фильтры выборки.
func (a *PostgresListingStorageAdapter) Update(ctx context.Context, id uuid.UUID, patch port.ListingPatch) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresListingStorageAdapter",
		"method":     "Update",
		"listing_id": id,
	})

	ub := newUpdateBuilder()
	ub.AddString("title", patch.Title)
	if patch.Type != nil {
		s := string(*patch.Type)
		ub.AddString("type", &s)
	}
	ub.AddFloat("price", patch.Price)
	ub.AddString("currency", patch.Currency)
	ub.AddString("address", patch.Address)
	ub.AddString("city", patch.City)
	ub.AddString("state", patch.State)
	ub.AddString("zip", patch.Zip)
	ub.AddFloat("bedrooms", patch.Bedrooms)
	ub.AddFloat("bathrooms", patch.Bathrooms)
	ub.AddFloat("sqft", patch.Sqft)
	ub.AddString("description", patch.Description)
	if patch.Images != nil {
		ub.Add("images", patch.Images)
	}

	if ub.Empty() {
		// Пустой патч - просто возвращаем текущее состояние
		return a.GetByID(ctx, id)
	}

	setClause, args := ub.Build()
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE listings SET %s WHERE id = $%d RETURNING `+listingColumns, setClause, len(args))

	updated, err := scanListing(a.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		repoLogger.Error("Failed to update listing", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	repoLogger.Debug("Listing updated", nil)
	return updated, nil
}

func (a *PostgresListingStorageAdapter) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresListingStorageAdapter",
		"method":     "UpdateStatus",
		"listing_id": id,
		"status":     status,
	})

	query := `UPDATE listings SET status = $1 WHERE id = $2`

	cmdTag, err := a.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		repoLogger.Error("Failed to update listing status", err, port.Fields{"query": query})
		return fmt.Errorf("failed to update listing status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Listing not found for status update", nil)
		return domain.ErrListingNotFound
	}

	repoLogger.Debug("Listing status updated", nil)
	return nil
}

func (a *PostgresListingStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresListingStorageAdapter",
		"method":     "Delete",
		"listing_id": id,
	})

	cmdTag, err := a.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete listing", err, nil)
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Listing not found for delete", nil)
		return domain.ErrListingNotFound
	}

	repoLogger.Debug("Listing deleted", nil)
	return nil
}
