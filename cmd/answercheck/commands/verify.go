package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"answercheck/pkg/core"
	"answercheck/pkg/dataset"
	"answercheck/pkg/reporter"
	"answercheck/pkg/scorer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVerifyCommand() *cobra.Command {
	var (
		datasetPath string
		answersPath string
		truthPath   string
		scorerName  string
		workers     int
		outputPath  string
		format      string
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Score a file of candidate answers against ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetResolved := resolveString(datasetPath, appConfig.Dataset)
			answersResolved := resolveString(answersPath, appConfig.Answers)
			truthResolved := resolveString(truthPath, appConfig.Truth)

			var ds core.Dataset
			switch {
			case datasetResolved != "":
				ds = dataset.NewFileDataset(datasetResolved)
			case answersResolved != "" && truthResolved != "":
				answers, err := dataset.LoadAnswers(answersResolved)
				if err != nil {
					return err
				}
				truth, err := dataset.LoadGroundTruth(truthResolved)
				if err != nil {
					return err
				}
				samples, missing := dataset.JoinAnswers(answers, truth)
				if missing > 0 {
					logger.Warn("answers without a ground-truth row were skipped",
						zap.Int("skipped", missing))
				}
				ds = dataset.NewSliceDataset(samples, filepath.Base(answersResolved))
			default:
				return errors.New("either --dataset or both --answers and --truth are required")
			}

			scorerResolved := resolveString(scorerName, appConfig.Scorer)
			if scorerResolved == "" {
				scorerResolved = "generous"
			}
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = "table"
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			workerCount := resolveInt(workers, appConfig.Workers, 1)
			strictResolved := strict || appConfig.Strict

			sc, err := buildScorer(scorerResolved, strictResolved)
			if err != nil {
				return err
			}

			totalSamples := 0
			if count, err := ds.Len(context.Background()); err == nil {
				totalSamples = count
			}
			progress := newProgressBar(progressWriter(cmd), totalSamples)
			progress.Update(0)

			verifier := core.Verifier{
				Dataset:      ds,
				Scorer:       sc,
				Workers:      workerCount,
				TotalSamples: totalSamples,
				Progress: func(completed, total int) {
					progress.Update(completed)
				},
			}

			report, err := verifier.Run(context.Background())
			if err != nil {
				return err
			}

			for _, result := range report.Results {
				if result.Score.Correct {
					logger.Info("answer accepted",
						zap.String("id", result.Sample.ID),
						zap.String("match_type", string(result.Score.MatchType)))
				} else {
					logger.Info("answer rejected",
						zap.String("id", result.Sample.ID),
						zap.String("expected", result.Sample.Expected),
						zap.String("answer", result.Sample.Answer))
				}
			}
			logger.Info("verification complete",
				zap.Int("samples", report.Metrics.TotalSamples),
				zap.Int("correct", report.Metrics.Correct),
				zap.Float64("accuracy", report.Metrics.Accuracy),
				zap.Float64("strict_accuracy", report.Metrics.StrictAccuracy))

			if report.Metadata == nil {
				report.Metadata = map[string]string{}
			}
			report.Metadata["scorer"] = sc.Name()

			writer := os.Stdout
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}
			return rep.Report(report)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "path to a self-contained samples file (JSON or JSONL)")
	cmd.Flags().StringVar(&answersPath, "answers", "", "path to an agent answers file (JSON array)")
	cmd.Flags().StringVar(&truthPath, "truth", "", "path to a ground-truth metadata file (JSONL)")
	cmd.Flags().StringVar(&scorerName, "scorer", "", "scorer name (generous, strict)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of workers")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().StringVar(&format, "format", "", "output format (table, json, html, markdown, csv)")
	cmd.Flags().BoolVar(&strict, "strict", false, "disable fallback strategies")

	return cmd
}

func buildScorer(name string, strict bool) (core.Scorer, error) {
	switch name {
	case "generous":
		return scorer.Generous{Strict: strict}, nil
	case "strict":
		return scorer.Generous{Strict: true}, nil
	default:
		return nil, fmt.Errorf("unknown scorer: %s", name)
	}
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatHTML:
		return reporter.HTMLReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveInt(value int, fallback int, defaultValue int) int {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}
