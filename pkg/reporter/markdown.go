package reporter

import (
	"fmt"
	"io"

	"answercheck/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report core.Report) error {
	if _, err := fmt.Fprintf(r.Writer, "# Answercheck Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Task: %s\n- Scorer: %s\n\n", report.TaskName, report.ScorerName); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "## Summary\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Metric | Value |\n|---|---|\n"); err != nil {
		return err
	}
	lines := []struct {
		Name  string
		Value string
	}{
		{"Total samples", fmt.Sprintf("%d", report.Metrics.TotalSamples)},
		{"Correct", fmt.Sprintf("%d", report.Metrics.Correct)},
		{"Accuracy", fmt.Sprintf("%.2f%%", report.Metrics.Accuracy*100)},
		{"Strict correct", fmt.Sprintf("%d", report.Metrics.StrictCorrect)},
		{"Strict accuracy", fmt.Sprintf("%.2f%%", report.Metrics.StrictAccuracy*100)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(r.Writer, "| %s | %s |\n", line.Name, line.Value); err != nil {
			return err
		}
	}

	if len(report.Metrics.MatchTypes) > 0 {
		if _, err := fmt.Fprintf(r.Writer, "\n## Match types\n\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.Writer, "| Match type | Count |\n|---|---|\n"); err != nil {
			return err
		}
		for _, matchType := range matchTypeOrder {
			count, ok := report.Metrics.MatchTypes[matchType]
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(r.Writer, "| %s | %d |\n", matchType, count); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(r.Writer, "\n## Samples\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| ID | Expected | Answer | Correct | Match type | Error |\n|---|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, result := range report.Results {
		if _, err := fmt.Fprintf(
			r.Writer,
			"| %s | %s | %s | %t | %s | %s |\n",
			result.Sample.ID,
			escapePipe(result.Sample.Expected),
			escapePipe(result.Sample.Answer),
			result.Score.Correct,
			result.Score.MatchType,
			escapePipe(result.Error),
		); err != nil {
			return err
		}
	}
	return nil
}

func escapePipe(input string) string {
	if input == "" {
		return ""
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if r == '|' {
			out = append(out, '\\', r)
		} else if r == '\n' || r == '\r' {
			out = append(out, ' ')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
