package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/mcplanner/internal/domain"
)

// BandsCSVFormatter writes one row per year with the mean and percentile bands.
type BandsCSVFormatter struct{}

func (c BandsCSVFormatter) Name() string { return "csv" }

func (c BandsCSVFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "CalendarYear", "Mean", "P5", "P95"}); err != nil {
		return nil, err
	}
	if report.Result != nil {
		r := report.Result
		for i := range r.Mean {
			row := []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(report.CalendarYear(i)),
				formatCSVFloat(r.Mean[i]),
				formatCSVFloat(r.P5[i]),
				formatCSVFloat(r.P95[i]),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
