package reporter

import (
	"html/template"
	"io"

	"answercheck/pkg/core"
)

type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

func (r HTMLReporter) Report(report core.Report) error {
	title := r.Title
	if title == "" {
		title = "Answercheck Report"
	}

	data := struct {
		Title  string
		Report core.Report
	}{
		Title:  title,
		Report: report,
	}

	tpl := template.Must(template.New("report").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
    .meta { margin-bottom: 12px; }
    .pass { color: #1a7f37; }
    .fail { color: #cf222e; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="meta">
    <div><strong>Task:</strong> {{ .Report.TaskName }}</div>
    <div><strong>Scorer:</strong> {{ .Report.ScorerName }}</div>
  </div>
  <h2>Summary</h2>
  <table>
    <tr><th>Metric</th><th>Value</th></tr>
    <tr><td>Total samples</td><td>{{ .Report.Metrics.TotalSamples }}</td></tr>
    <tr><td>Correct</td><td>{{ .Report.Metrics.Correct }}</td></tr>
    <tr><td>Accuracy</td><td>{{ printf "%.2f" .Report.Metrics.Accuracy }}</td></tr>
    <tr><td>Strict correct</td><td>{{ .Report.Metrics.StrictCorrect }}</td></tr>
    <tr><td>Strict accuracy</td><td>{{ printf "%.2f" .Report.Metrics.StrictAccuracy }}</td></tr>
  </table>
  <h2>Samples</h2>
  <table>
    <tr><th>ID</th><th>Question</th><th>Expected</th><th>Answer</th><th>Verdict</th><th>Match type</th><th>Error</th></tr>
    {{ range .Report.Results }}
    <tr>
      <td>{{ .Sample.ID }}</td>
      <td>{{ .Sample.Question }}</td>
      <td>{{ .Sample.Expected }}</td>
      <td>{{ .Sample.Answer }}</td>
      {{ if .Score.Correct }}<td class="pass">correct</td>{{ else }}<td class="fail">incorrect</td>{{ end }}
      <td>{{ .Score.MatchType }}</td>
      <td>{{ .Error }}</td>
    </tr>
    {{ end }}
  </table>
</body>
</html>
`
