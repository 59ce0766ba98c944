package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"listing-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	// формируем объект ошибки
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteDomainError транслирует ошибки ядра в HTTP-статусы.
func WriteDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var remoteErr *domain.RemoteError

	switch {
	case errors.As(err, &validationErr):
		WriteJSONError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, domain.ErrListingNotFound):
		WriteJSONError(w, http.StatusNotFound, "Listing not found")
	case errors.Is(err, domain.ErrPermissionDenied):
		WriteJSONError(w, http.StatusForbidden, "You don't have permission to modify this listing")
	case errors.Is(err, domain.ErrToggleInFlight):
		WriteJSONError(w, http.StatusConflict, "Favorite toggle already in progress")
	case errors.As(err, &remoteErr):
		WriteJSONError(w, http.StatusBadGateway, "Upstream favorite store is unavailable")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func GetLimitOrDefault(r *http.Request, def int) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	limit := def // дефолтное значение
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return 0, err
		}
	}
	return limit, nil
}
