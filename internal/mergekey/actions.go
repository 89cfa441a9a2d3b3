// Package mergekey implements the merge-key verb: apply a reviewed
// answer key over a parsed paper's records and rewrite the artifact.
package mergekey

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/answerkey"
	"github.com/paperbank/exam-parser/pkg/artifacts"
)

var recordJSON = sonic.ConfigStd

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	source := c.String("source")
	keyPath := c.String("key")
	if source == "" || keyPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --source and --key are required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  exam-parser merge-key --source papers/jee-2022.md --key jee-2022-key.yaml`)
		os.Exit(1)
	}

	key, err := loadKey(keyPath)
	if err != nil {
		logger.Error("failed to load answer key", "key", keyPath, "error", err)
		os.Exit(2)
	}

	manager, err := artifacts.NewManager(c.String("output-dir"), 0)
	if err != nil {
		logger.Error("failed to initialize artifact manager", "error", err)
		os.Exit(2)
	}

	data, found, err := manager.Load(source, artifacts.QuestionsFile)
	if err != nil {
		logger.Error("failed to load parsed artifact", "source", source, "error", err)
		os.Exit(2)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no parsed artifact for %s, run the parse command first\n", source)
		os.Exit(1)
	}

	var result models.Result
	if err := recordJSON.Unmarshal(data, &result); err != nil {
		logger.Error("failed to decode parsed artifact", "source", source, "error", err)
		os.Exit(2)
	}

	merged, report := answerkey.Apply(result.Questions, *key)
	result.Questions = merged

	updated, err := recordJSON.MarshalIndent(&result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal merged result: %w", err)
	}
	artifactPath, err := manager.Save(source, artifacts.QuestionsFile, updated)
	if err != nil {
		return fmt.Errorf("failed to save merged artifact: %w", err)
	}

	logger.Info("answer key merged",
		"source", source,
		"applied", report.Applied,
		"unmatched", len(report.Unmatched),
		"invalid", len(report.Invalid))

	fmt.Printf("Applied %d of %d key entries to %s\n", report.Applied, len(key.Answers), artifactPath)
	if len(report.Unmatched) > 0 {
		fmt.Printf("Unmatched question indexes: %s\n", strings.Join(report.Unmatched, ", "))
	}
	if len(report.Invalid) > 0 {
		fmt.Printf("Invalid entries (bad answer letter): %s\n", strings.Join(report.Invalid, ", "))
	}

	return nil
}

// loadKey reads an answer key file, accepting yaml or json by extension.
func loadKey(path string) (*models.AnswerKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var key models.AnswerKey
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := recordJSON.Unmarshal(data, &key); err != nil {
			return nil, fmt.Errorf("failed to parse json key: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &key); err != nil {
			return nil, fmt.Errorf("failed to parse yaml key: %w", err)
		}
	}

	if len(key.Answers) == 0 {
		return nil, fmt.Errorf("answer key %s has no entries", path)
	}
	return &key, nil
}
