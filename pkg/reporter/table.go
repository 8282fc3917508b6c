package reporter

import (
	"fmt"
	"io"

	"answercheck/pkg/core"

	"github.com/olekukonko/tablewriter"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report core.Report) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Metric", "Value"})
	table.Append([]string{"Total samples", fmt.Sprintf("%d", report.Metrics.TotalSamples)})
	table.Append([]string{"Correct", fmt.Sprintf("%d", report.Metrics.Correct)})
	table.Append([]string{"Accuracy", fmt.Sprintf("%.2f%%", report.Metrics.Accuracy*100)})
	table.Append([]string{"Strict correct", fmt.Sprintf("%d", report.Metrics.StrictCorrect)})
	table.Append([]string{"Strict accuracy", fmt.Sprintf("%.2f%%", report.Metrics.StrictAccuracy*100)})
	table.Append([]string{"Avg duration", report.Metrics.AvgDuration.String()})
	table.Append([]string{"P95 duration", report.Metrics.P95Duration.String()})
	table.Render()

	if len(report.Metrics.MatchTypes) == 0 {
		return nil
	}

	breakdown := tablewriter.NewWriter(r.Writer)
	breakdown.Header([]string{"Match type", "Count"})
	for _, matchType := range matchTypeOrder {
		count, ok := report.Metrics.MatchTypes[matchType]
		if !ok {
			continue
		}
		breakdown.Append([]string{string(matchType), fmt.Sprintf("%d", count)})
	}
	breakdown.Render()
	return nil
}
