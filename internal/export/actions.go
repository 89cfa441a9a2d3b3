// Package export implements the export verb: wrap a parsed paper in
// the tutorial envelope, validate it, and write JSON or YAML.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/artifacts"
	"github.com/paperbank/exam-parser/pkg/tutorial"
)

// exportJSON keeps map keys sorted so the A-D option order survives
// serialization.
var exportJSON = sonic.ConfigStd

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	source := c.String("source")
	if source == "" {
		fmt.Fprintln(os.Stderr, "Error: --source is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  exam-parser export --source papers/jee-2022.md --board "JEE Main" --exam-id jee-main`)
		os.Exit(1)
	}

	result, err := loadResult(c.String("output-dir"), source)
	if err != nil {
		logger.Error("failed to load parsed paper", "source", source, "error", err)
		os.Exit(2)
	}

	idStyle := tutorial.IDYearNumber
	if c.String("id-style") == "year-subject-index" {
		idStyle = tutorial.IDYearSubjectIndex
	}

	meta := tutorial.Meta{
		Board:           c.String("board"),
		AuthorityExamID: c.String("exam-id"),
		State:           c.String("state"),
		ConductedBy:     c.String("conducted-by"),
		Description:     c.String("description"),
		IDStyle:         idStyle,
	}

	envelope := tutorial.Assemble(result, meta)
	if err := tutorial.Validate(envelope); err != nil {
		logger.Error("tutorial envelope failed validation", "source", source, "error", err)
		os.Exit(2)
	}

	data, err := marshalEnvelope(envelope, c.String("format"))
	if err != nil {
		logger.Error("failed to marshal tutorial", "source", source, "error", err)
		os.Exit(2)
	}

	output := c.String("output")
	if output == "" || output == "-" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logger.Info("tutorial exported",
		"source", source,
		"output", output,
		"questions", envelope.TotalQuestions)
	fmt.Printf("Exported %d questions to %s\n", envelope.TotalQuestions, output)

	return nil
}

// loadResult reads the questions.json artifact written by the parse verb.
func loadResult(outputDir, source string) (*models.Result, error) {
	manager, err := artifacts.NewManager(outputDir, 0)
	if err != nil {
		return nil, err
	}

	data, found, err := manager.Load(source, artifacts.QuestionsFile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no parsed artifact for %s, run the parse command first", source)
	}

	var result models.Result
	if err := exportJSON.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode parsed artifact: %w", err)
	}
	return &result, nil
}

func marshalEnvelope(envelope models.Tutorial, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return exportJSON.MarshalIndent(envelope, "", "  ")
	case "yaml":
		return yaml.Marshal(envelope)
	default:
		return nil, fmt.Errorf("unknown format %q, expected json or yaml", format)
	}
}
