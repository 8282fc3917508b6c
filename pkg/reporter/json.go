package reporter

import (
	"encoding/json"
	"io"

	"answercheck/pkg/core"
)

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(report core.Report) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
