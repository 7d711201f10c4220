package domain

// Variant identifies which path model a simulation run uses
type Variant string

const (
	VariantRetirement   Variant = "retirement"
	VariantHomePurchase Variant = "home_purchase"
)

// RetirementParameters describes a savings accumulation and drawdown plan.
// Rates are decimal fractions (0.05 == 5%).
type RetirementParameters struct {
	CurrentSavings          float64 `yaml:"current_savings" json:"current_savings"`
	AnnualSavings           float64 `yaml:"annual_savings" json:"annual_savings"`
	YearsUntilRetirement    int     `yaml:"years_until_retirement" json:"years_until_retirement"`
	RetirementYears         int     `yaml:"retirement_years" json:"retirement_years"`
	AnnualExpenses          float64 `yaml:"annual_expenses" json:"annual_expenses"`
	InflationRate           float64 `yaml:"inflation_rate" json:"inflation_rate"`
	RetirementTaxRate       float64 `yaml:"retirement_tax_rate" json:"retirement_tax_rate"`
	MeanReturn              float64 `yaml:"mean_return" json:"mean_return"`
	StandardDeviationReturn float64 `yaml:"standard_deviation_return" json:"standard_deviation_return"`
	NumSimulations          int     `yaml:"num_simulations" json:"num_simulations"`
}

// Horizon returns the total number of simulated years
func (p RetirementParameters) Horizon() int {
	return p.YearsUntilRetirement + p.RetirementYears
}

// HomePurchaseParameters describes a financed home purchase held for the
// length of the mortgage. Rates are decimal fractions.
type HomePurchaseParameters struct {
	DownPayment          float64 `yaml:"down_payment" json:"down_payment"`
	LoanAmount           float64 `yaml:"loan_amount" json:"loan_amount"`
	MortgageRate         float64 `yaml:"mortgage_rate" json:"mortgage_rate"`
	MortgageYears        int     `yaml:"mortgage_years" json:"mortgage_years"`
	MonthlyPayment       float64 `yaml:"monthly_payment,omitempty" json:"monthly_payment,omitempty"` // 0 derives the amortizing payment
	HomeAppreciationMean float64 `yaml:"home_appreciation_mean" json:"home_appreciation_mean"`
	HomeAppreciationStd  float64 `yaml:"home_appreciation_std" json:"home_appreciation_std"`
	SellingCosts         float64 `yaml:"selling_costs" json:"selling_costs"`
	NumSimulations       int     `yaml:"num_simulations" json:"num_simulations"`

	// Carried for presentation; net proceeds only use the balance, home value and SellingCosts.
	PropertyTaxes float64 `yaml:"property_taxes,omitempty" json:"property_taxes,omitempty"`
	Insurance     float64 `yaml:"insurance,omitempty" json:"insurance,omitempty"`
	HOA           float64 `yaml:"hoa,omitempty" json:"hoa,omitempty"`
	BuyingCosts   float64 `yaml:"buying_costs,omitempty" json:"buying_costs,omitempty"`
	TaxRate       float64 `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
}

// HomeValue returns the purchase price of the home
func (p HomePurchaseParameters) HomeValue() float64 {
	return p.DownPayment + p.LoanAmount
}

// SimulationSettings controls how a run is executed rather than what it models
type SimulationSettings struct {
	Seed      uint32 `yaml:"seed,omitempty" json:"seed,omitempty"` // 0 picks a time-derived seed
	Workers   int    `yaml:"workers,omitempty" json:"workers,omitempty"`
	StartYear int    `yaml:"start_year,omitempty" json:"start_year,omitempty"`
}

// Configuration is the top-level document loaded from a YAML file.
// Exactly one of Retirement or HomePurchase is set.
type Configuration struct {
	Simulation   SimulationSettings      `yaml:"simulation" json:"simulation"`
	Retirement   *RetirementParameters   `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	HomePurchase *HomePurchaseParameters `yaml:"home_purchase,omitempty" json:"home_purchase,omitempty"`
}

// Variant reports which model the configuration selects
func (c *Configuration) Variant() Variant {
	if c.HomePurchase != nil {
		return VariantHomePurchase
	}
	return VariantRetirement
}
