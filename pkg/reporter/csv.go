package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"answercheck/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report core.Report) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{"id", "question", "expected", "answer", "correct", "match_type", "strict_correct", "error", "duration_seconds"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, result := range report.Results {
		record := []string{
			result.Sample.ID,
			result.Sample.Question,
			result.Sample.Expected,
			result.Sample.Answer,
			strconv.FormatBool(result.Score.Correct),
			string(result.Score.MatchType),
			strconv.FormatBool(result.Score.StrictCorrect),
			result.Error,
			strconv.FormatFloat(result.Duration.Seconds(), 'f', 6, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
