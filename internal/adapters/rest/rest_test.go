package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterCriteria(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/api/v1/listings?type=apartment&priceRange=1000-2500&minBedrooms=2&location=austin", nil)

	criteria, err := parseFilterCriteria(r)
	require.NoError(t, err)

	require.NotNil(t, criteria.Type)
	assert.Equal(t, domain.TypeApartment, *criteria.Type)
	require.NotNil(t, criteria.Price.Min)
	assert.Equal(t, 1000.0, *criteria.Price.Min)
	require.NotNil(t, criteria.Price.Max)
	assert.Equal(t, 2500.0, *criteria.Price.Max)
	require.NotNil(t, criteria.MinBedrooms)
	assert.Equal(t, 2.0, *criteria.MinBedrooms)
	assert.Equal(t, "austin", criteria.LocationText)
}

func TestParseFilterCriteriaAllSentinelMeansNoFilter(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/listings?type=all&priceRange=all", nil)

	criteria, err := parseFilterCriteria(r)
	require.NoError(t, err)
	assert.True(t, criteria.IsEmpty())
}

func TestParseFilterCriteriaRejectsUnknownType(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/listings?type=castle", nil)

	_, err := parseFilterCriteria(r)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseFilterCriteriaGarbagePriceDegradesToNoop(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/listings?priceRange=cheap-expensive", nil)

	criteria, err := parseFilterCriteria(r)
	require.NoError(t, err)
	assert.Nil(t, criteria.Price.Min)
	assert.Nil(t, criteria.Price.Max)
}

func TestParseMortgageRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/api/v1/mortgage/estimate?price=300000&downPaymentPercent=20&interestRate=6&loanTermYears=30", nil)

	req, err := parseMortgageRequest(r)
	require.NoError(t, err)
	assert.Equal(t, 300000.0, req.Price)
	assert.Equal(t, 20.0, req.DownPaymentPercent)
	assert.Equal(t, 6.0, req.AnnualInterestRatePercent)
	assert.Equal(t, 30, req.LoanTermYears)
}

func TestParseMortgageRequestRejectsMissingParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/mortgage/estimate?price=300000", nil)

	_, err := parseMortgageRequest(r)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestWriteDomainErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: &domain.ValidationError{Field: "price", Reason: "must be positive"}, wantStatus: http.StatusBadRequest},
		{name: "not found", err: domain.ErrListingNotFound, wantStatus: http.StatusNotFound},
		{name: "permission denied", err: domain.ErrPermissionDenied, wantStatus: http.StatusForbidden},
		{name: "toggle in flight", err: domain.ErrToggleInFlight, wantStatus: http.StatusConflict},
		{name: "remote failure", err: &domain.RemoteError{Op: "add", Err: errors.New("down")}, wantStatus: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAuthMiddlewareRequiresIdentityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, domain.RoleLandlord, actor.Role)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(next)

	// Без заголовков - 401
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/my/listings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Кривой UUID - 401
	rec = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/my/listings", nil)
	r.Header.Set("X-User-ID", "not-a-uuid")
	r.Header.Set("X-User-Role", "landlord")
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Неизвестная роль - 401
	rec = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/api/v1/my/listings", nil)
	r.Header.Set("X-User-ID", "550e8400-e29b-41d4-a716-446655440000")
	r.Header.Set("X-User-Role", "superuser")
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Валидная пара заголовков проходит до обработчика
	rec = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/api/v1/my/listings", nil)
	r.Header.Set("X-User-ID", "550e8400-e29b-41d4-a716-446655440000")
	r.Header.Set("X-User-Role", "landlord")
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
}
