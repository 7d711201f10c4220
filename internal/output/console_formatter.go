package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/mcplanner/internal/domain"
)

// ConsoleFormatter prints the headline summary, guidance and the per-year band table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	if report.Result == nil {
		return nil, fmt.Errorf("report has no result")
	}
	var buf bytes.Buffer
	heading := title(report)
	fmt.Fprintln(&buf, heading)
	fmt.Fprintln(&buf, underline(len(heading)))

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for _, row := range parameterRows(report) {
		fmt.Fprintf(tw, "%s:\t%s\n", row.Label, row.Value)
	}
	fmt.Fprintf(tw, "Seed:\t%d\n", report.Result.Seed)
	tw.Flush()
	fmt.Fprintln(&buf)

	s := report.Summary
	milestone, horizon := milestoneLabel(report)
	fmt.Fprintf(&buf, "%s (%d): %s\n", milestone, report.CalendarYear(max(s.MilestoneYear-1, 0)), s.ValueAtMilestone.Format())
	fmt.Fprintf(&buf, "%s (%d): %s\n", horizon, report.CalendarYear(max(s.HorizonYear-1, 0)), s.ValueAtHorizonEnd.Format())
	fmt.Fprintf(&buf, "Success rate: %s (%d of %d paths)\n", FormatPercentage(s.SuccessRate), s.SuccessfulPaths, report.Result.NumSimulations)
	fmt.Fprintf(&buf, "Guidance: %s\n", s.Guidance.Message())
	if report.Result.DegeneratePaths > 0 {
		fmt.Fprintf(&buf, "Warning: %d paths produced non-finite values\n", report.Result.DegeneratePaths)
	}
	if s.Degenerate() {
		fmt.Fprintln(&buf, "Warning: headline values are not finite")
	}
	fmt.Fprintln(&buf)

	tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tCalendar\tMean\tP5\tP95\t")
	for i := range report.Result.Mean {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t\n",
			i+1,
			report.CalendarYear(i),
			FormatCurrency(report.Result.Mean[i]),
			FormatCurrency(report.Result.P5[i]),
			FormatCurrency(report.Result.P95[i]),
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func underline(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '='
	}
	return string(b)
}
