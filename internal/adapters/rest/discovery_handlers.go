package rest

import (
	"net/http"
	"strconv"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DiscoveryHandler обслуживает публичный поиск: фильтры, похожие
// объявления и ипотечный калькулятор.
type DiscoveryHandler struct {
	findUC     usecases_port.FindListingsUseCase
	similarUC  usecases_port.GetSimilarListingsUseCase
	mortgageUC usecases_port.EstimateMortgageUseCase
}

func NewDiscoveryHandler(findUC usecases_port.FindListingsUseCase,
	similarUC usecases_port.GetSimilarListingsUseCase,
	mortgageUC usecases_port.EstimateMortgageUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		findUC:     findUC,
		similarUC:  similarUC,
		mortgageUC: mortgageUC,
	}
}

// FindListings обрабатывает GET /api/v1/listings
func (h *DiscoveryHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindListings"})

	criteria, err := parseFilterCriteria(r)
	if err != nil {
		logger.Warn("Invalid filter parameters", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("Processing request to find listings", nil)

	listings, err := h.findUC.Execute(r.Context(), criteria)
	if err != nil {
		logger.Error("Find listings use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	logger.Info("Successfully found listings", port.Fields{"total_found": len(listings)})
	RespondWithJSON(w, http.StatusOK, ListingsResponse{
		Data:  toListingResponses(listings),
		Total: len(listings),
	})
}

// parseFilterCriteria собирает критерии поиска из query-строки.
// Значение "all" и пустая строка означают отсутствие фильтра.
func parseFilterCriteria(r *http.Request) (domain.FilterCriteria, error) {
	var criteria domain.FilterCriteria
	q := r.URL.Query()

	if typeStr := q.Get("type"); typeStr != "" && typeStr != "all" {
		t, err := domain.ParseListingType(typeStr)
		if err != nil {
			return criteria, err
		}
		criteria.Type = &t
	}

	// Исторический формат "min-max", мусор деградирует до no-op
	criteria.Price = domain.ParsePriceRange(q.Get("priceRange"))

	if bedroomsStr := q.Get("minBedrooms"); bedroomsStr != "" {
		bedrooms, err := strconv.ParseFloat(bedroomsStr, 64)
		if err != nil {
			return criteria, &domain.ValidationError{Field: "minBedrooms", Reason: "must be a number"}
		}
		criteria.MinBedrooms = &bedrooms
	}

	if bathroomsStr := q.Get("minBathrooms"); bathroomsStr != "" {
		bathrooms, err := strconv.ParseFloat(bathroomsStr, 64)
		if err != nil {
			return criteria, &domain.ValidationError{Field: "minBathrooms", Reason: "must be a number"}
		}
		criteria.MinBathrooms = &bathrooms
	}

	criteria.LocationText = q.Get("location")

	return criteria, nil
}

// GetSimilarListings обрабатывает GET /api/v1/listings/{listingID}/similar
func (h *DiscoveryHandler) GetSimilarListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSimilarListings"})

	listingIDStr := chi.URLParam(r, "listingID")
	listingID, err := uuid.Parse(listingIDStr)
	if err != nil {
		logger.Warn("Invalid listingID in URL", port.Fields{"provided_id": listingIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listingID in URL")
		return
	}

	limit, err := GetLimitOrDefault(r, domain.DefaultSimilarLimit)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"listing_id": listingID,
		"limit":      limit,
	})
	handlerLogger.Info("Processing request to get similar listings", nil)

	listings, err := h.similarUC.Execute(r.Context(), listingID, limit)
	if err != nil {
		handlerLogger.Error("Get similar listings use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully found similar listings", port.Fields{"total_found": len(listings)})
	RespondWithJSON(w, http.StatusOK, ListingsResponse{
		Data:  toListingResponses(listings),
		Total: len(listings),
	})
}

// EstimateMortgage обрабатывает GET /api/v1/mortgage/estimate
func (h *DiscoveryHandler) EstimateMortgage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "EstimateMortgage"})

	req, err := parseMortgageRequest(r)
	if err != nil {
		logger.Warn("Invalid mortgage parameters", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	logger.Info("Processing request to estimate mortgage", port.Fields{"price": req.Price})

	estimate, err := h.mortgageUC.Execute(r.Context(), req)
	if err != nil {
		logger.Warn("Mortgage estimation rejected", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, MortgageEstimateResponse{
		MonthlyPrincipalInterest: estimate.MonthlyPrincipalInterest,
		MonthlyPropertyTax:       estimate.MonthlyPropertyTax,
		MonthlyInsurance:         estimate.MonthlyInsurance,
		TotalMonthly:             estimate.TotalMonthly,
		LoanAmount:               estimate.LoanAmount,
		TotalPayment:             estimate.TotalPayment,
		TotalInterest:            estimate.TotalInterest,
	})
}

func parseMortgageRequest(r *http.Request) (usecases_port.MortgageRequest, error) {
	var req usecases_port.MortgageRequest
	q := r.URL.Query()

	parse := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(q.Get(name), 64)
		if err != nil {
			return 0, &domain.ValidationError{Field: name, Reason: "must be a number"}
		}
		return v, nil
	}

	var err error
	if req.Price, err = parse("price"); err != nil {
		return req, err
	}
	if req.DownPaymentPercent, err = parse("downPaymentPercent"); err != nil {
		return req, err
	}
	if req.AnnualInterestRatePercent, err = parse("interestRate"); err != nil {
		return req, err
	}

	years, err := strconv.Atoi(q.Get("loanTermYears"))
	if err != nil {
		return req, &domain.ValidationError{Field: "loanTermYears", Reason: "must be an integer"}
	}
	req.LoanTermYears = years

	return req, nil
}
