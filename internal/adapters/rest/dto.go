package rest

import (
	"time"

	"listing-service/internal/core/domain"
)

// ListingResponse - DTO для карточки объявления.
type ListingResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Bedrooms    float64   `json:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms"`
	Sqft        float64   `json:"sqft"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toListingResponse(l domain.Listing) ListingResponse {
	return ListingResponse{
		ID:          l.ID.String(),
		OwnerID:     l.OwnerID.String(),
		Title:       l.Title,
		Type:        string(l.Type),
		Price:       l.Price,
		Currency:    l.Currency,
		Address:     l.Address,
		City:        l.City,
		State:       l.State,
		Zip:         l.Zip,
		Bedrooms:    l.Bedrooms,
		Bathrooms:   l.Bathrooms,
		Sqft:        l.Sqft,
		Description: l.Description,
		Images:      l.Images,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
	}
}

func toListingResponses(listings []domain.Listing) []ListingResponse {
	out := make([]ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l)
	}
	return out
}

// ListingsResponse - DTO для ответа со списком объявлений.
type ListingsResponse struct {
	Data  []ListingResponse `json:"listings"`
	Total int               `json:"total"`
}

// SaveListingRequest - тело POST /listings. Проверяется по JSON-схеме
// до маппинга в домен.
type SaveListingRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Zip         string   `json:"zip"`
	Bedrooms    float64  `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	Sqft        float64  `json:"sqft"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
}

// UpdateListingRequest - тело PUT /listings/{listingID}. nil-поля не трогаются.
type UpdateListingRequest struct {
	Title       *string  `json:"title"`
	Type        *string  `json:"type"`
	Price       *float64 `json:"price"`
	Currency    *string  `json:"currency"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Zip         *string  `json:"zip"`
	Bedrooms    *float64 `json:"bedrooms"`
	Bathrooms   *float64 `json:"bathrooms"`
	Sqft        *float64 `json:"sqft"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}

// UpdateStatusRequest - тело PATCH /listings/{listingID}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// MortgageEstimateRequest - параметры займа из query-строки калькулятора.
type MortgageEstimateRequest struct {
	Price                     float64 `json:"price"`
	DownPaymentPercent        float64 `json:"down_payment_percent"`
	AnnualInterestRatePercent float64 `json:"annual_interest_rate_percent"`
	LoanTermYears             int     `json:"loan_term_years"`
}

// MortgageEstimateResponse - разбивка ежемесячного платежа.
type MortgageEstimateResponse struct {
	MonthlyPrincipalInterest float64 `json:"monthly_principal_interest"`
	MonthlyPropertyTax       float64 `json:"monthly_property_tax"`
	MonthlyInsurance         float64 `json:"monthly_insurance"`
	TotalMonthly             float64 `json:"total_monthly"`
	LoanAmount               float64 `json:"loan_amount"`
	TotalPayment             float64 `json:"total_payment"`
	TotalInterest            float64 `json:"total_interest"`
}

// ToggleFavoriteResponse - итоговое состояние пары после переключения.
type ToggleFavoriteResponse struct {
	ListingID string `json:"listing_id"`
	Favorited bool   `json:"favorited"`
}

// UploadAttachmentResponse - результат загрузки вложения.
type UploadAttachmentResponse struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}
