package calculation

import (
	"math"

	"github.com/rpgo/mcplanner/internal/domain"
)

// MonthlyPayment returns the payment the home purchase uses: the supplied
// one, or the fixed amortizing payment when none is given
func MonthlyPayment(p domain.HomePurchaseParameters) float64 {
	if p.MonthlyPayment > 0 {
		return p.MonthlyPayment
	}
	n := float64(p.MortgageYears * 12)
	monthlyRate := p.MortgageRate / 12
	if monthlyRate == 0 {
		return p.LoanAmount / n
	}
	return p.LoanAmount * monthlyRate / (1 - math.Pow(1+monthlyRate, -n))
}

// BuildAmortizationSchedule computes the year-end mortgage balances.
// The loan side does not depend on appreciation, so every path shares it.
//
// Each month pays min(payment-interest, balance) of principal. With a derived
// payment the final scheduled month instead pays off whatever balance remains,
// so floating-point drift never leaves a few cents outstanding and the loan
// ends at exactly zero. A supplied payment always follows the monthly rule.
func BuildAmortizationSchedule(p domain.HomePurchaseParameters) (*domain.AmortizationSchedule, error) {
	if err := ValidateHomePurchase(p); err != nil {
		return nil, err
	}

	payment := MonthlyPayment(p)
	derived := p.MonthlyPayment <= 0
	monthlyRate := p.MortgageRate / 12
	numPayments := p.MortgageYears * 12

	schedule := &domain.AmortizationSchedule{
		MonthlyPayment: payment,
		DerivedPayment: derived,
		Years:          make([]domain.AmortizationYear, 0, p.MortgageYears),
	}

	balance := p.LoanAmount
	month := 0
	for year := 1; year <= p.MortgageYears; year++ {
		row := domain.AmortizationYear{Year: year}
		for m := 0; m < 12 && balance > 0; m++ {
			interest := balance * monthlyRate
			principal := math.Min(payment-interest, balance)
			if derived && month+m == numPayments-1 {
				principal = balance
			}
			balance -= principal
			row.InterestPaid += interest
			row.PrincipalPaid += principal
		}
		month += 12
		row.EndingBalance = balance
		schedule.Years = append(schedule.Years, row)
	}

	return schedule, nil
}

// HomePurchaseSimulator models home appreciation against a fixed mortgage and
// reports the net proceeds of selling at the end of each year
type HomePurchaseSimulator struct {
	params   domain.HomePurchaseParameters
	schedule *domain.AmortizationSchedule
}

// NewHomePurchaseSimulator validates params and precomputes the loan schedule
func NewHomePurchaseSimulator(params domain.HomePurchaseParameters) (*HomePurchaseSimulator, error) {
	schedule, err := BuildAmortizationSchedule(params)
	if err != nil {
		return nil, err
	}
	return &HomePurchaseSimulator{params: params, schedule: schedule}, nil
}

// Schedule returns the shared amortization schedule
func (hs *HomePurchaseSimulator) Schedule() *domain.AmortizationSchedule {
	return hs.schedule
}

// SimulatePath runs one path with its own generator seeded from seed
func (hs *HomePurchaseSimulator) SimulatePath(seed uint32) domain.Path {
	gen := NewNormalGenerator(hs.params.HomeAppreciationMean, hs.params.HomeAppreciationStd, NewMulberry32(seed))
	return hs.Simulate(gen)
}

// Simulate runs one path drawing yearly appreciation from appreciation
func (hs *HomePurchaseSimulator) Simulate(appreciation Variate) domain.Path {
	path := make(domain.Path, 0, len(hs.schedule.Years))
	homeValue := hs.params.HomeValue()
	for _, year := range hs.schedule.Years {
		homeValue *= 1 + appreciation.Next()
		balance := math.Max(year.EndingBalance, 0)
		netProceeds := homeValue - balance - hs.params.SellingCosts*homeValue
		path = append(path, netProceeds)
	}
	return path
}
