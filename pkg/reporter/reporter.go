package reporter

import "answercheck/pkg/core"

// Reporter writes a verification report.
type Reporter interface {
	Report(report core.Report) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// matchTypeOrder fixes the breakdown row order to the cascade order.
var matchTypeOrder = []core.MatchType{
	core.MatchExact,
	core.MatchNumberExtract,
	core.MatchContains,
	core.MatchExtracted,
	core.MatchWords,
	core.MatchUnorderedList,
	core.MatchAbbreviation,
	core.MatchNone,
}
