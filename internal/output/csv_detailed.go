package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"

	"github.com/rpgo/mcplanner/internal/domain"
)

// PathsCSVFormatter writes every simulated path: one row per path, one column per calendar year.
type PathsCSVFormatter struct{}

func (c PathsCSVFormatter) Name() string { return "paths-csv" }

func (c PathsCSVFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	if report.Result == nil || len(report.Result.Paths) == 0 {
		return nil, errors.New("report carries no simulated paths")
	}
	r := report.Result

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := make([]string, 0, r.Years()+1)
	header = append(header, "Path")
	for i := 0; i < r.Years(); i++ {
		header = append(header, strconv.Itoa(report.CalendarYear(i)))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := make([]string, 0, len(header))
	for i, p := range r.Paths {
		row = append(row[:0], strconv.Itoa(i+1))
		for _, v := range p {
			row = append(row, formatCSVFloat(v))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
