package domain

import "math"

// Фиксированные оценочные ставки налога на недвижимость и страховки
// (1.2% и 0.5% годовых). Это иллюстративные константы, не настройка.
const (
	annualPropertyTaxRate = 0.012
	annualInsuranceRate   = 0.005
)

// MortgageEstimate - результат расчета ипотеки. Живет только в рамках
// одного вычисления, никогда не сохраняется.
type MortgageEstimate struct {
	MonthlyPrincipalInterest float64
	MonthlyPropertyTax       float64
	MonthlyInsurance         float64
	TotalMonthly             float64
	LoanAmount               float64
	TotalPayment             float64
	TotalInterest            float64
}

// EstimateMortgage считает ежемесячный платеж по стандартной формуле
// аннуитета. Чистая функция: никакого I/O, результат детерминирован.
func EstimateMortgage(price, downPaymentPercent, annualInterestRatePercent float64, loanTermYears int) (*MortgageEstimate, error) {
	if price <= 0 {
		return nil, &ValidationError{Field: "price", Reason: "must be positive"}
	}
	if downPaymentPercent < 0 || downPaymentPercent > 100 {
		return nil, &ValidationError{Field: "downPaymentPercent", Reason: "must be between 0 and 100"}
	}
	if annualInterestRatePercent < 0 {
		return nil, &ValidationError{Field: "annualInterestRatePercent", Reason: "must be non-negative"}
	}
	if loanTermYears <= 0 {
		return nil, &ValidationError{Field: "loanTermYears", Reason: "must be positive"}
	}

	downPayment := price * downPaymentPercent / 100
	loanAmount := price - downPayment

	monthlyRate := annualInterestRatePercent / 100 / 12
	n := float64(loanTermYears * 12)

	var monthlyPI float64
	if monthlyRate == 0 {
		// Вырожденный линейный случай: без него формула делит на ноль
		monthlyPI = loanAmount / n
	} else {
		factor := math.Pow(1+monthlyRate, n)
		monthlyPI = loanAmount * monthlyRate * factor / (factor - 1)
	}

	monthlyTax := price * annualPropertyTaxRate / 12
	monthlyInsurance := price * annualInsuranceRate / 12

	totalPayment := monthlyPI * n

	return &MortgageEstimate{
		MonthlyPrincipalInterest: monthlyPI,
		MonthlyPropertyTax:       monthlyTax,
		MonthlyInsurance:         monthlyInsurance,
		TotalMonthly:             monthlyPI + monthlyTax + monthlyInsurance,
		LoanAmount:               loanAmount,
		TotalPayment:             totalPayment,
		TotalInterest:            totalPayment - loanAmount,
	}, nil
}
