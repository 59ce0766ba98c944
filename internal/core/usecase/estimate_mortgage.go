package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// EstimateMortgageUseCase - тонкая обертка над чистым расчетом:
// добавляет только логирование, сам расчет не имеет побочных эффектов.
type EstimateMortgageUseCase struct{}

func NewEstimateMortgageUseCase() *EstimateMortgageUseCase {
	return &EstimateMortgageUseCase{}
}

func (uc *EstimateMortgageUseCase) Execute(ctx context.Context, req usecases_port.MortgageRequest) (*domain.MortgageEstimate, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "EstimateMortgage",
		"price":           req.Price,
		"down_payment":    req.DownPaymentPercent,
		"interest_rate":   req.AnnualInterestRatePercent,
		"loan_term_years": req.LoanTermYears,
	})

	estimate, err := domain.EstimateMortgage(req.Price, req.DownPaymentPercent, req.AnnualInterestRatePercent, req.LoanTermYears)
	if err != nil {
		ucLogger.Warn("Mortgage estimation rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Mortgage estimated", port.Fields{
		"total_monthly": estimate.TotalMonthly,
	})

	return estimate, nil
}
