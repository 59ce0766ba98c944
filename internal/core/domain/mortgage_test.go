package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateMortgageStandardLoan(t *testing.T) {
	// 300000, 20% первый взнос, 6% годовых, 30 лет
	est, err := EstimateMortgage(300000, 20, 6, 30)
	require.NoError(t, err)

	assert.Equal(t, 240000.0, est.LoanAmount)
	// Аннуитет для 240000 под 0.5% в месяц на 360 месяцев
	assert.InDelta(t, 1438.92, est.MonthlyPrincipalInterest, 0.01)
	assert.InDelta(t, 300.0, est.MonthlyPropertyTax, 0.001)   // 1.2% годовых / 12
	assert.InDelta(t, 125.0, est.MonthlyInsurance, 0.001)     // 0.5% годовых / 12
	assert.InDelta(t, est.MonthlyPrincipalInterest+425.0, est.TotalMonthly, 0.001)
	assert.InDelta(t, est.MonthlyPrincipalInterest*360, est.TotalPayment, 0.01)
	assert.InDelta(t, est.TotalPayment-240000, est.TotalInterest, 0.01)
}

func TestEstimateMortgageZeroInterest(t *testing.T) {
	est, err := EstimateMortgage(360000, 0, 0, 30)
	require.NoError(t, err)

	// Линейный вырожденный случай: платеж равен телу кредита на месяц
	assert.Equal(t, 360000.0, est.LoanAmount)
	assert.InDelta(t, 1000.0, est.MonthlyPrincipalInterest, 1e-9)
	assert.InDelta(t, 0.0, est.TotalInterest, 1e-6)
}

func TestEstimateMortgageFullDownPayment(t *testing.T) {
	est, err := EstimateMortgage(200000, 100, 5, 15)
	require.NoError(t, err)

	assert.Equal(t, 0.0, est.LoanAmount)
	assert.Equal(t, 0.0, est.MonthlyPrincipalInterest)
	// Налог и страховка считаются от цены, не от займа
	assert.InDelta(t, 200.0, est.MonthlyPropertyTax, 1e-9)
}

func TestEstimateMortgageRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		down      float64
		rate      float64
		years     int
		wantField string
	}{
		{name: "zero price", price: 0, down: 20, rate: 6, years: 30, wantField: "price"},
		{name: "negative price", price: -1, down: 20, rate: 6, years: 30, wantField: "price"},
		{name: "negative down payment", price: 100000, down: -5, rate: 6, years: 30, wantField: "downPaymentPercent"},
		{name: "down payment over 100", price: 100000, down: 101, rate: 6, years: 30, wantField: "downPaymentPercent"},
		{name: "negative rate", price: 100000, down: 20, rate: -1, years: 30, wantField: "annualInterestRatePercent"},
		{name: "zero term", price: 100000, down: 20, rate: 6, years: 0, wantField: "loanTermYears"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateMortgage(tt.price, tt.down, tt.rate, tt.years)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestEstimateMortgageIsDeterministic(t *testing.T) {
	a, err := EstimateMortgage(250000, 10, 4.5, 20)
	require.NoError(t, err)
	b, err := EstimateMortgage(250000, 10, 4.5, 20)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
