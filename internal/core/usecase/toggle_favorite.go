package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"sync"

	"github.com/google/uuid"
)

// pairKey адресует автомат переключения для одной пары (пользователь, объявление).
type pairKey struct {
	userID    uuid.UUID
	listingID uuid.UUID
}

// ToggleFavoriteUseCase реализует оптимистичное переключение избранного
// как явный конечный автомат: idle -> pending -> committed | rolled_back.
//
// Фаза pending - взаимоисключающий шлюз для одной пары: повторный вызов,
// пока первый не завершился, отклоняется (не ставится в очередь), чтобы два
// переплетенных переключения не рассинхронизировали UI с хранилищем.
// Мьютекс держится только вокруг переходов состояния, никогда - на время
// удаленного вызова.
type ToggleFavoriteUseCase struct {
	repo port.FavoritesRepositoryPort

	mu     sync.Mutex
	states map[pairKey]*domain.ToggleState
}

func NewToggleFavoriteUseCase(repo port.FavoritesRepositoryPort) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		repo:   repo,
		states: make(map[pairKey]*domain.ToggleState),
	}
}

// State возвращает наблюдаемое состояние автомата для пары. Пара, которой
// никогда не касались, находится в idle.
func (uc *ToggleFavoriteUseCase) State(userID, listingID uuid.UUID) domain.ToggleState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.states[pairKey{userID, listingID}]; ok {
		return *s
	}
	return domain.ToggleState{Phase: domain.ToggleIdle}
}

// Execute переключает избранное. Возвращает итоговое (авторитетное)
// значение favorited. Ошибки: domain.ErrToggleInFlight если пара еще
// в pending, *domain.RemoteError при сбое хранилища (с локальным откатом
// оптимистичного значения).
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ToggleFavorite",
		"user_id":    userID,
		"listing_id": listingID,
	})

	key := pairKey{userID, listingID}

	// Переход idle/settled -> pending с оптимистичным флипом.
	uc.mu.Lock()
	state, ok := uc.states[key]
	if !ok {
		// Первое касание пары: узнаем текущее значение до входа в pending,
		// иначе нечего флипать.
		uc.mu.Unlock()
		current, err := uc.repo.IsFavorite(ctx, userID, listingID)
		if err != nil {
			ucLogger.Error("Failed to read current favorite state", err, nil)
			return false, &domain.RemoteError{Op: "isFavorite", Err: err}
		}
		uc.mu.Lock()
		// Пока ходили в хранилище, пару мог занять конкурент
		if state, ok = uc.states[key]; !ok {
			state = &domain.ToggleState{Phase: domain.ToggleIdle, Favorited: current}
			uc.states[key] = state
		}
	}
	if state.Phase == domain.TogglePending {
		uc.mu.Unlock()
		ucLogger.Warn("Toggle rejected: pair is still pending", nil)
		return false, domain.ErrToggleInFlight
	}

	lastKnown := state.Favorited
	optimistic := !lastKnown
	state.Phase = domain.TogglePending
	state.Favorited = optimistic
	uc.mu.Unlock()

	ucLogger.Debug("Entered pending with optimistic flip", port.Fields{
		"optimistic": optimistic,
	})

	// Удаленный вызов вне мьютекса. Отмены нет: начатый запрос доводится
	// до исхода, только потом пара принимает следующий toggle.
	var opErr error
	op := "remove"
	if optimistic {
		op = "add"
		opErr = uc.repo.Add(ctx, userID, listingID)
	} else {
		opErr = uc.repo.Remove(ctx, userID, listingID)
	}

	if opErr != nil {
		uc.mu.Lock()
		state.Phase = domain.ToggleRolledBack
		state.Favorited = lastKnown
		uc.mu.Unlock()

		ucLogger.Error("Store call failed, optimistic state rolled back", opErr, port.Fields{"op": op})
		return lastKnown, &domain.RemoteError{Op: op, Err: opErr}
	}

	// Commit: авторитетным считаем значение из хранилища. Если сверка
	// не удалась, оставляем оптимистичную догадку - запись уже прошла.
	authoritative := optimistic
	if actual, err := uc.repo.IsFavorite(ctx, userID, listingID); err == nil {
		if actual != optimistic {
			ucLogger.Warn("Store disagreed with optimistic guess, reconciling", port.Fields{
				"optimistic":    optimistic,
				"authoritative": actual,
			})
		}
		authoritative = actual
	} else {
		ucLogger.Warn("Post-commit reconcile read failed, keeping optimistic value", port.Fields{"error": err.Error()})
	}

	uc.mu.Lock()
	state.Phase = domain.ToggleCommitted
	state.Favorited = authoritative
	uc.mu.Unlock()

	ucLogger.Info("Use case finished successfully", port.Fields{
		"favorited": authoritative,
	})

	return authoritative, nil
}
