package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxListingBodySize = 1 << 20 // 1MB

// ListingHandler обслуживает CRUD объявлений в личном кабинете.
type ListingHandler struct {
	detailsUC       usecases_port.GetListingDetailsUseCase
	saveUC          usecases_port.SaveListingUseCase
	updateUC        usecases_port.UpdateListingUseCase
	updateStatusUC  usecases_port.UpdateListingStatusUseCase
	deleteUC        usecases_port.DeleteListingUseCase
	ownerListingsUC usecases_port.GetOwnerListingsUseCase
}

func NewListingHandler(detailsUC usecases_port.GetListingDetailsUseCase,
	saveUC usecases_port.SaveListingUseCase,
	updateUC usecases_port.UpdateListingUseCase,
	updateStatusUC usecases_port.UpdateListingStatusUseCase,
	deleteUC usecases_port.DeleteListingUseCase,
	ownerListingsUC usecases_port.GetOwnerListingsUseCase) *ListingHandler {
	return &ListingHandler{
		detailsUC:       detailsUC,
		saveUC:          saveUC,
		updateUC:        updateUC,
		updateStatusUC:  updateStatusUC,
		deleteUC:        deleteUC,
		ownerListingsUC: ownerListingsUC,
	}
}

// GetListingDetails обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingHandler) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListingDetails"})

	listingIDStr := chi.URLParam(r, "listingID")
	listingID, err := uuid.Parse(listingIDStr)
	if err != nil {
		logger.Warn("Invalid listingID in URL", port.Fields{"provided_id": listingIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listingID in URL")
		return
	}

	listing, err := h.detailsUC.Execute(r.Context(), listingID)
	if err != nil {
		logger.Error("Get listing details use case failed", err, port.Fields{"listing_id": listingID})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// SaveListing обрабатывает POST /api/v1/listings
func (h *ListingHandler) SaveListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SaveListing"})

	actor, ok := actorFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing actor in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user identity in context")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxListingBodySize))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Сначала валидация по JSON-схеме, потом маппинг в домен
	if err := contracts.ValidateRequest(constants.RequestTypeSaveListing, constants.RequestVersion, body); err != nil {
		logger.Warn("Request body failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var reqDTO SaveListingRequest
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := domain.StatusDraft
	if reqDTO.Status != "" {
		status = domain.ListingStatus(reqDTO.Status)
	}

	listing := domain.Listing{
		OwnerID:     actor.UserID,
		Title:       reqDTO.Title,
		Type:        domain.ListingType(reqDTO.Type),
		Price:       reqDTO.Price,
		Currency:    reqDTO.Currency,
		Address:     reqDTO.Address,
		City:        reqDTO.City,
		State:       reqDTO.State,
		Zip:         reqDTO.Zip,
		Bedrooms:    reqDTO.Bedrooms,
		Bathrooms:   reqDTO.Bathrooms,
		Sqft:        reqDTO.Sqft,
		Description: reqDTO.Description,
		Images:      reqDTO.Images,
		Status:      status,
	}

	handlerLogger := logger.WithFields(port.Fields{"owner_id": actor.UserID})
	handlerLogger.Info("Processing request to save listing", nil)

	saved, err := h.saveUC.Execute(r.Context(), listing)
	if err != nil {
		handlerLogger.Error("Save listing use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully saved listing", port.Fields{"listing_id": saved.ID})
	RespondWithJSON(w, http.StatusCreated, toListingResponse(*saved))
}

// UpdateListing обрабатывает PUT /api/v1/listings/{listingID}
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListing"})

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

	var reqDTO UpdateListingRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxListingBodySize)).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := port.ListingPatch{
		Title:       reqDTO.Title,
		Price:       reqDTO.Price,
		Currency:    reqDTO.Currency,
		Address:     reqDTO.Address,
		City:        reqDTO.City,
		State:       reqDTO.State,
		Zip:         reqDTO.Zip,
		Bedrooms:    reqDTO.Bedrooms,
		Bathrooms:   reqDTO.Bathrooms,
		Sqft:        reqDTO.Sqft,
		Description: reqDTO.Description,
		Images:      reqDTO.Images,
	}
	if reqDTO.Type != nil {
		t, err := domain.ParseListingType(*reqDTO.Type)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		patch.Type = &t
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":    actor.UserID,
		"listing_id": listingID,
	})
	handlerLogger.Info("Processing request to update listing", nil)

	updated, err := h.updateUC.Execute(r.Context(), actor, listingID, patch)
	if err != nil {
		handlerLogger.Error("Update listing use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully updated listing", nil)
	RespondWithJSON(w, http.StatusOK, toListingResponse(*updated))
}

// UpdateListingStatus обрабатывает PATCH /api/v1/listings/{listingID}/status
func (h *ListingHandler) UpdateListingStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListingStatus"})

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

	var reqDTO UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := domain.ParseListingStatus(reqDTO.Status)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":    actor.UserID,
		"listing_id": listingID,
		"status":     status,
	})
	handlerLogger.Info("Processing request to update listing status", nil)

	if err := h.updateStatusUC.Execute(r.Context(), actor, listingID, status); err != nil {
		handlerLogger.Error("Update listing status use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully updated listing status", nil)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteListing обрабатывает DELETE /api/v1/listings/{listingID}
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteListing"})

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
	handlerLogger.Info("Processing request to delete listing", nil)

	if err := h.deleteUC.Execute(r.Context(), actor, listingID); err != nil {
		handlerLogger.Error("Delete listing use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully deleted listing", nil)
	w.WriteHeader(http.StatusNoContent) // 204 No Content - стандартный ответ на успешный DELETE
}

// GetOwnerListings обрабатывает GET /api/v1/my/listings
func (h *ListingHandler) GetOwnerListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetOwnerListings"})

	actor, ok := actorFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing actor in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user identity in context")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"owner_id": actor.UserID})
	handlerLogger.Info("Processing request to get owner listings", nil)

	listings, err := h.ownerListingsUC.Execute(r.Context(), actor.UserID)
	if err != nil {
		handlerLogger.Error("Get owner listings use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully retrieved owner listings", port.Fields{"total_found": len(listings)})
	RespondWithJSON(w, http.StatusOK, ListingsResponse{
		Data:  toListingResponses(listings),
		Total: len(listings),
	})
}
