// Package parse implements the parse verb: load exam documents, run
// the extraction pipeline over them concurrently, and write artifacts,
// database rows, and a session summary.
package parse

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/analytics"
	"github.com/paperbank/exam-parser/pkg/artifacts"
	"github.com/paperbank/exam-parser/pkg/caching"
	"github.com/paperbank/exam-parser/pkg/db"
	"github.com/paperbank/exam-parser/pkg/fetcher"
	"github.com/paperbank/exam-parser/pkg/manifest"
	"github.com/paperbank/exam-parser/pkg/mapreduce"
	"github.com/paperbank/exam-parser/pkg/parser"
	"github.com/paperbank/exam-parser/pkg/session"
	"github.com/paperbank/exam-parser/pkg/storage"

	"github.com/paperbank/exam-parser/internal/common"
)

func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := buildConfig(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(config.Sources) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No sources provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  exam-parser parse --sources "papers/jee-2022.md,papers/neet-2021.tex"`)
		fmt.Fprintln(os.Stderr, `  exam-parser parse --sources "https://example.org/paper.html"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: exam-parser parse --help")
		os.Exit(1)
	}

	manager, err := artifacts.NewManager(config.OutputDir, 0)
	if err != nil {
		logger.Error("failed to initialize artifact manager", "error", err)
		os.Exit(2)
	}

	cache, err := caching.NewCache(config.CacheDir, config.CacheTTL)
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		os.Exit(2)
	}

	var database *db.DB
	if !config.SkipDB {
		database, err = db.Open()
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(2)
		}
		defer database.Close()
	}

	config.SessionID = session.GenerateSessionID(config.Sources)
	logger.Info("session", "session_id", config.SessionID)

	d := &deps{
		fetcher:   fetcher.NewFetcher(),
		cache:     cache,
		parser:    parser.New(logger),
		analytics: &analytics.Analytics{},
		manager:   manager,
		database:  database,
	}

	allResults, finalWordCounts, runErr := run(context.Background(), logger, config, d)

	var successCount, failedCount int
	for _, r := range allResults {
		if r.Error != nil {
			failedCount++
		} else {
			successCount++
		}
	}

	if err := session.EnsureSessionDir(manager.BaseDir(), config.SessionID); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := session.GenerateFieldsReference(manager.BaseDir()); err != nil {
		logger.Warn("failed to generate FIELDS.yaml reference", "error", err)
	}

	store := &storage.Storage{}
	sessionDir := session.GetSessionDir(manager.BaseDir(), config.SessionID)
	summaryPath, err := manifest.GenerateSummary(config.SessionID, sessionDir, toOutcomes(allResults), store)
	if err != nil {
		return fmt.Errorf("failed to write session summary: %w", err)
	}

	questionCount, reviewCount := 0, 0
	for _, r := range allResults {
		if r.Result == nil {
			continue
		}
		questionCount += len(r.Result.Questions)
		for _, q := range r.Result.Questions {
			if q.NeedsReview {
				reviewCount++
			}
		}
	}

	info := session.SessionInfo{
		SessionID:      config.SessionID,
		Created:        time.Now(),
		PaperCount:     len(config.Sources),
		Success:        successCount,
		Failed:         failedCount,
		QuestionCount:  questionCount,
		NeedsReview:    reviewCount,
		SourcesPreview: session.GetSourcesPreview(config.Sources, 3),
	}
	if err := session.UpdateSessionIndex(manager.BaseDir(), info); err != nil {
		logger.Warn("failed to update sessions index", "error", err)
	}

	logger.Info("parse complete",
		"elapsed_seconds", time.Since(startTime).Seconds(),
		"top_keywords", mapreduce.TopKeywords(finalWordCounts, 10))

	fmt.Printf("Session %s: %d/%d papers parsed, %d questions (%d need review)\nSummary: %s\n",
		config.SessionID, successCount, len(config.Sources), questionCount, reviewCount, summaryPath)

	return runErr
}

func buildConfig(c *cli.Context) (*Config, error) {
	opts := models.DefaultParseOptions()

	switch c.String("dialect") {
	case "", "auto":
		opts.Dialect = models.DialectAuto
	case "latex":
		opts.Dialect = models.DialectLaTeX
	case "markdown":
		opts.Dialect = models.DialectMarkdown
	default:
		return nil, fmt.Errorf("invalid dialect %q, expected auto, latex, or markdown", c.String("dialect"))
	}

	if c.IsSet("default-subject") {
		opts.DefaultSubject = c.String("default-subject")
	}
	if c.IsSet("min-block-len") {
		opts.MinBlockLen = c.Int("min-block-len")
	}
	if c.IsSet("max-option-len") {
		opts.MaxOptionLen = c.Int("max-option-len")
	}

	ranges, err := common.ParseSubjectRanges(c.String("subject-ranges"))
	if err != nil {
		return nil, err
	}
	opts.SubjectRanges = ranges

	cacheTTL, err := time.ParseDuration(c.String("cache-ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid cache-ttl duration: %w", err)
	}

	return &Config{
		Sources:     common.SplitSources(c.String("sources")),
		WorkerCount: c.Int("workers"),
		Opts:        opts,
		OutputDir:   c.String("output-dir"),
		CacheDir:    c.String("cache-dir"),
		CacheTTL:    cacheTTL,
		ForceFetch:  c.Bool("force-fetch"),
		SkipDB:      c.Bool("no-db"),
	}, nil
}

func toOutcomes(results []Result) []manifest.ParseOutcome {
	outcomes := make([]manifest.ParseOutcome, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, manifest.ParseOutcome{
			Source:       r.Source,
			ArtifactPath: r.ArtifactPath,
			SizeBytes:    r.SizeBytes,
			Dialect:      r.Dialect,
			Result:       r.Result,
			Error:        r.Error,
			WordCounts:   r.WordCounts,
		})
	}
	return outcomes
}
