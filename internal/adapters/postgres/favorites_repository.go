package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresFavoritesRepository - реализация FavoritesRepositoryPort для PostgreSQL.
type PostgresFavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFavoritesRepository(pool *pgxpool.Pool) (*PostgresFavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresFavoritesRepository{pool: pool}, nil
}

func (r *PostgresFavoritesRepository) IsFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresFavoritesRepository",
		"method":     "IsFavorite",
		"user_id":    userID,
		"listing_id": listingID,
	})

	query := `SELECT EXISTS(SELECT 1 FROM user_favorites WHERE user_id = $1 AND listing_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, listingID).Scan(&exists); err != nil {
		repoLogger.Error("Failed to check favorite existence", err, port.Fields{"query": query})
		return false, fmt.Errorf("failed to check favorite existence: %w", err)
	}
	return exists, nil
}

// Add добавляет запись в user_favorites.
func (r *PostgresFavoritesRepository) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresFavoritesRepository",
		"method":     "Add",
		"user_id":    userID,
		"listing_id": listingID,
	})

	repoLogger.Debug("Attempting to add to favorites.", nil)
	query := `INSERT INTO user_favorites (user_id, listing_id) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, query, userID, listingID)
	if err != nil {
		// Нарушение unique constraint означает, что пара уже существует.
		// Для existence-only семантики это не ошибка.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // 23505 - unique_violation
			repoLogger.Warn("Favorite already exists, operation considered successful.", nil)
			return nil
		}
		repoLogger.Error("Failed to add favorite", err, port.Fields{"query": query})
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	repoLogger.Debug("Successfully added to favorites.", nil)
	return nil
}

// Remove удаляет запись из user_favorites.
func (r *PostgresFavoritesRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresFavoritesRepository",
		"method":     "Remove",
		"user_id":    userID,
		"listing_id": listingID,
	})

	repoLogger.Debug("Attempting to remove from favorites.", nil)
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND listing_id = $2`

	cmdTag, err := r.pool.Exec(ctx, query, userID, listingID)
	if err != nil {
		repoLogger.Error("Failed to remove favorite", err, port.Fields{"query": query})
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to remove a favorite that did not exist.", nil)
	} else {
		repoLogger.Debug("Successfully removed from favorites.", nil)
	}
	return nil
}

func (r *PostgresFavoritesRepository) FindFavoriteIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresFavoritesRepository",
		"method":    "FindFavoriteIDsByUser",
		"user_id":   userID,
	})

	// Новые избранные первыми
	dataQuery := `SELECT listing_id FROM user_favorites WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, dataQuery, userID)
	if err != nil {
		repoLogger.Error("Failed to query favorite IDs", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to query favorite IDs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			repoLogger.Error("Failed to scan favorite ID row", err, nil)
			return nil, fmt.Errorf("failed to scan favorite ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during favorite IDs iteration", err, nil)
		return nil, fmt.Errorf("error during favorite IDs iteration: %w", err)
	}

	return ids, nil
}
