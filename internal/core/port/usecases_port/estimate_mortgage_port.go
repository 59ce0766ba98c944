package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

// MortgageRequest - параметры займа, выбранные пользователем.
type MortgageRequest struct {
	Price                     float64
	DownPaymentPercent        float64
	AnnualInterestRatePercent float64
	LoanTermYears             int
}

// EstimateMortgageUseCase - расчет ежемесячного платежа по ипотеке.
type EstimateMortgageUseCase interface {
	Execute(ctx context.Context, req MortgageRequest) (*domain.MortgageEstimate, error)
}
