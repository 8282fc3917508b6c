package dataset

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"answercheck/pkg/core"
)

// GroundTruth is one row of the benchmark metadata file.
type GroundTruth struct {
	Question string
	Answer   string
}

// AgentAnswer is one candidate answer produced by an upstream agent run.
// Answer is nullable: agents report null when they gave up.
type AgentAnswer struct {
	TaskID   string  `json:"task_id"`
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
}

// truthRow mirrors the benchmark metadata field names verbatim.
type truthRow struct {
	TaskID      string `json:"task_id"`
	Question    string `json:"Question"`
	FinalAnswer string `json:"Final answer"`
}

// LoadGroundTruth reads a metadata JSONL file and indexes it by task id.
// Rows missing a task id or a final answer are skipped.
func LoadGroundTruth(path string) (map[string]GroundTruth, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	truth := make(map[string]GroundTruth)
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var row truthRow
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, err
		}
		if row.TaskID == "" || row.FinalAnswer == "" {
			continue
		}
		truth[row.TaskID] = GroundTruth{
			Question: row.Question,
			Answer:   row.FinalAnswer,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return truth, nil
}

// LoadAnswers reads an agent answers file (JSON array).
func LoadAnswers(path string) ([]AgentAnswer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var answers []AgentAnswer
	if err := json.NewDecoder(file).Decode(&answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// JoinAnswers matches agent answers to ground truth by task id and builds
// verification samples. Answers with no ground-truth row are dropped;
// the count of dropped answers is returned alongside the samples.
func JoinAnswers(answers []AgentAnswer, truth map[string]GroundTruth) ([]core.Sample, int) {
	samples := make([]core.Sample, 0, len(answers))
	missing := 0
	for _, answer := range answers {
		gt, ok := truth[answer.TaskID]
		if !ok {
			missing++
			continue
		}
		question := answer.Question
		if question == "" {
			question = gt.Question
		}
		samples = append(samples, core.Sample{
			ID:       answer.TaskID,
			Question: question,
			Answer:   CoerceAnswer(answer.Answer),
			Expected: gt.Answer,
		})
	}
	return samples, missing
}
