package rest

import (
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FavoritesHandler обслуживает избранное: переключение и список карточек.
type FavoritesHandler struct {
	toggleUC usecases_port.ToggleFavoriteUseCase
	listUC   usecases_port.GetUserFavoritesUseCase
}

func NewFavoritesHandler(toggleUC usecases_port.ToggleFavoriteUseCase,
	listUC usecases_port.GetUserFavoritesUseCase) *FavoritesHandler {
	return &FavoritesHandler{
		toggleUC: toggleUC,
		listUC:   listUC,
	}
}

// ToggleFavorite обрабатывает POST /api/v1/favorites/{listingID}/toggle
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ToggleFavorite"})

	actor, ok := actorFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing actor in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user identity in context")
		return
	}

	listingIDStr := chi.URLParam(r, "listingID")
	listingID, err := uuid.Parse(listingIDStr)
	if err != nil {
		logger.Warn("Invalid listingID in URL", port.Fields{"provided_id": listingIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listingID in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":    actor.UserID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to toggle favorite", nil)

	favorited, err := h.toggleUC.Execute(r.Context(), actor.UserID, listingID)
	if err != nil {
		handlerLogger.Error("Toggle favorite use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully toggled favorite", port.Fields{"favorited": favorited})
	RespondWithJSON(w, http.StatusOK, ToggleFavoriteResponse{
		ListingID: listingID.String(),
		Favorited: favorited,
	})
}

// GetUserFavorites обрабатывает GET /api/v1/favorites
func (h *FavoritesHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavorites"})

	actor, ok := actorFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing actor in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user identity in context")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": actor.UserID})
	handlerLogger.Info("Processing request to get user favorites", nil)

	listings, err := h.listUC.Execute(r.Context(), actor.UserID)
	if err != nil {
		handlerLogger.Error("Get user favorites use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully retrieved user favorites", port.Fields{"total_found": len(listings)})
	RespondWithJSON(w, http.StatusOK, ListingsResponse{
		Data:  toListingResponses(listings),
		Total: len(listings),
	})
}
