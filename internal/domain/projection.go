package domain

import (
	"bytes"
	"math"
	"strconv"

	"github.com/rpgo/mcplanner/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// Series is an ordered sequence of yearly values indexed by year offset.
// Non-finite values marshal as JSON null so degenerate paths stay encodable.
type Series []float64

// MarshalJSON implements json.Marshaler
func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Last returns the final value, or 0 for an empty series
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// IsDegenerate reports whether any value is NaN or infinite
func (s Series) IsDegenerate() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// Path is one simulated trajectory: one outcome per simulated year
type Path = Series

// AggregateResult holds the per-year statistics across all simulated paths.
// Mean, P5 and P95 share the length of the longest path.
type AggregateResult struct {
	Mean            Series `json:"mean"`
	P5              Series `json:"p5"`
	P95             Series `json:"p95"`
	Paths           []Path `json:"paths,omitempty"`
	NumSimulations  int    `json:"num_simulations"`
	Seed            uint32 `json:"seed"`
	DegeneratePaths int    `json:"degenerate_paths"`
}

// Years returns the number of aggregated years
func (r *AggregateResult) Years() int {
	return len(r.Mean)
}

// GuidanceTier buckets a success rate into advice levels
type GuidanceTier string

const (
	TierSolid                 GuidanceTier = "solid"
	TierGoodTrack             GuidanceTier = "good_track"
	TierSomeRisk              GuidanceTier = "some_risk"
	TierSignificantChallenges GuidanceTier = "significant_challenges"
)

// Message returns the guidance text shown next to the success rate
func (t GuidanceTier) Message() string {
	switch t {
	case TierSolid:
		return "Your plan looks solid. Most simulated markets leave money at the end."
	case TierGoodTrack:
		return "You are on a good track. A modest adjustment would add margin."
	case TierSomeRisk:
		return "There is some risk. Consider saving more, spending less or retiring later."
	default:
		return "The plan faces significant challenges. Many simulated paths run out of money."
	}
}

// Amount is a headline dollar value read from the mean series. NaN and
// infinities are kept so a degenerate run never reads as $0.
type Amount float64

// IsFinite reports whether the amount is neither NaN nor infinite
func (a Amount) IsFinite() bool {
	v := float64(a)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Money returns the amount rounded to cents. Non-finite amounts have no
// decimal form; check IsFinite first.
func (a Amount) Money() decimal.Money {
	return decimal.NewMoney(float64(a)).Round()
}

// String renders cents for finite amounts and "n/a", "+inf" or "-inf" otherwise
func (a Amount) String() string {
	if !a.IsFinite() {
		return decimal.FormatUSD(float64(a))
	}
	return a.Money().String()
}

// Format renders whole US dollars with thousands separators
func (a Amount) Format() string {
	if !a.IsFinite() {
		return decimal.FormatUSD(float64(a))
	}
	return a.Money().Format()
}

// MarshalJSON implements json.Marshaler; non-finite amounts encode as null
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.IsFinite() {
		return []byte("null"), nil
	}
	return a.Money().MarshalJSON()
}

// Summary holds the headline metrics of a run
type Summary struct {
	MilestoneYear     int          `json:"milestone_year"`
	HorizonYear       int          `json:"horizon_year"`
	ValueAtMilestone  Amount       `json:"value_at_milestone"`
	ValueAtHorizonEnd Amount       `json:"value_at_horizon_end"`
	SuccessRate       shop.Decimal `json:"success_rate"` // rounded percentage, 0-100
	SuccessfulPaths   int          `json:"successful_paths"`
	Guidance          GuidanceTier `json:"guidance"`
}

// Degenerate reports whether either headline value is NaN or infinite
func (s Summary) Degenerate() bool {
	return !s.ValueAtMilestone.IsFinite() || !s.ValueAtHorizonEnd.IsFinite()
}

// AmortizationYear is one year of a mortgage schedule
type AmortizationYear struct {
	Year          int     `json:"year"`
	InterestPaid  float64 `json:"interest_paid"`
	PrincipalPaid float64 `json:"principal_paid"`
	EndingBalance float64 `json:"ending_balance"`
}

// AmortizationSchedule is the deterministic loan side of a home purchase
type AmortizationSchedule struct {
	MonthlyPayment float64            `json:"monthly_payment"`
	DerivedPayment bool               `json:"derived_payment"`
	Years          []AmortizationYear `json:"years"`
}

// FinalBalance returns the balance left after the last scheduled year
func (s *AmortizationSchedule) FinalBalance() float64 {
	if len(s.Years) == 0 {
		return 0
	}
	return s.Years[len(s.Years)-1].EndingBalance
}

// SimulationReport bundles everything one run produced for presentation
type SimulationReport struct {
	Variant      Variant                 `json:"variant"`
	StartYear    int                     `json:"start_year"`
	Result       *AggregateResult        `json:"result"`
	Summary      Summary                 `json:"summary"`
	Retirement   *RetirementParameters   `json:"retirement,omitempty"`
	HomePurchase *HomePurchaseParameters `json:"home_purchase,omitempty"`
	Schedule     *AmortizationSchedule   `json:"schedule,omitempty"`
}

// CalendarYear maps a year offset to the calendar year label used in charts
func (r *SimulationReport) CalendarYear(index int) int {
	return r.StartYear + index
}

// WithoutPaths returns a shallow copy whose result omits the raw paths
func (r *SimulationReport) WithoutPaths() *SimulationReport {
	cp := *r
	if r.Result != nil {
		res := *r.Result
		res.Paths = nil
		cp.Result = &res
	}
	return &cp
}
