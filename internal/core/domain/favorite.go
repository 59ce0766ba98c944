package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteItem - одна запись "пользователь сохранил объявление".
// Пара (UserID, ListingID) уникальна; само существование записи и есть
// все состояние, отдельного флага "снято из избранного" нет.
type FavoriteItem struct {
	UserID    uuid.UUID
	ListingID uuid.UUID
	CreatedAt time.Time
}

// TogglePhase - фаза конечного автомата переключения избранного
// для одной пары (пользователь, объявление).
type TogglePhase string

const (
	ToggleIdle       TogglePhase = "idle"
	TogglePending    TogglePhase = "pending"
	ToggleCommitted  TogglePhase = "committed"
	ToggleRolledBack TogglePhase = "rolled_back"
)

// ToggleState - наблюдаемое состояние автомата. Favorited - значение,
// видимое в UI: оптимистичное во время pending, авторитетное после commit.
type ToggleState struct {
	Phase     TogglePhase
	Favorited bool
}
