package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/rpgo/mcplanner/internal/domain"
)

// HTMLFormatter produces a self-contained page charting the mean with its p5/p95 band.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	if report.Result == nil {
		return nil, fmt.Errorf("report has no result")
	}
	labels := make([]int, report.Result.Years())
	for i := range labels {
		labels[i] = report.CalendarYear(i)
	}
	milestone, horizon := milestoneLabel(report)

	data := struct {
		*domain.SimulationReport
		Title          string
		Parameters     []parameterRow
		Labels         []int
		MilestoneLabel string
		HorizonLabel   string
		Guidance       string
	}{report, title(report), parameterRows(report), labels, milestone, horizon, report.Summary.Guidance.Message()}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
