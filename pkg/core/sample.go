package core

// Sample is a single verification input: a candidate answer produced by an
// upstream agent and the ground-truth answer it is judged against.
type Sample struct {
	ID       string            `json:"id" yaml:"id"`
	Question string            `json:"question,omitempty" yaml:"question,omitempty"`
	Answer   string            `json:"answer" yaml:"answer"`
	Expected string            `json:"expected" yaml:"expected"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
