package parse

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/paperbank/exam-parser/pkg/analytics"
	"github.com/paperbank/exam-parser/pkg/artifacts"
	"github.com/paperbank/exam-parser/pkg/caching"
	"github.com/paperbank/exam-parser/pkg/db"
	"github.com/paperbank/exam-parser/pkg/dialect"
	"github.com/paperbank/exam-parser/pkg/fetcher"
	"github.com/paperbank/exam-parser/pkg/ingest"
	"github.com/paperbank/exam-parser/pkg/mapreduce"
	"github.com/paperbank/exam-parser/pkg/parser"

	"github.com/paperbank/exam-parser/internal/common"
)

// deps bundles the shared services every worker uses.
type deps struct {
	fetcher   *fetcher.Fetcher
	cache     *caching.Cache
	parser    *parser.Parser
	analytics *analytics.Analytics
	manager   *artifacts.Manager
	database  *db.DB
}

func run(ctx context.Context, logger *slog.Logger, config *Config, d *deps) ([]Result, map[string]int, error) {
	logger.Info("starting parse phase",
		"source_count", len(config.Sources),
		"workers", config.WorkerCount,
		"dialect", string(config.Opts.Dialect))

	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.Sources))
	results := make(chan Result, len(config.Sources))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, d, config, &wg, jobs, results)
	}

	for _, source := range config.Sources {
		jobs <- Job{Source: source, Opts: config.Opts}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("all parse workers finished")

	allResults := make([]Result, 0, len(config.Sources))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more sources failed")
		}
	}

	intermediate := []map[string]int{}
	for _, result := range allResults {
		if result.WordCounts != nil {
			intermediate = append(intermediate, result.WordCounts)
		}
	}
	finalWordCounts := mapreduce.Reduce(intermediate)

	return allResults, finalWordCounts, runErr
}

// worker processes jobs from the jobs channel and sends results to the
// results channel.
func worker(ctx context.Context, id int, logger *slog.Logger, d *deps, config *Config, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("worker started job", "worker_id", id, "source", job.Source)
		results <- processSource(ctx, id, logger, d, config, job)
		logger.Info("worker finished job", "worker_id", id, "source", job.Source)
	}
}

// questionJSON keeps map keys sorted so the A-D option order survives
// serialization.
var questionJSON = sonic.ConfigStd

func processSource(ctx context.Context, id int, logger *slog.Logger, d *deps, config *Config, job Job) Result {
	result := Result{Source: job.Source, sessionID: config.SessionID}

	doc, err := loadDocument(ctx, logger, d, config, job.Source)
	if err != nil {
		logger.Error("error loading source", "worker_id", id, "source", job.Source, "error", err)
		result.Error = err
		result.ErrorType = "load_error"
		return result
	}

	if lang, foreign := ingest.CheckLanguage(doc.Text); foreign {
		logger.Warn("document does not look like English, extraction quality may suffer",
			"source", job.Source, "language", lang)
	}

	result.Dialect = string(dialect.Detect(doc.Text))

	parsed, err := d.parser.Parse(doc.Text, job.Opts)
	if err != nil {
		logger.Error("error parsing document", "worker_id", id, "source", job.Source, "error", err)
		result.Error = err
		result.ErrorType = "parse_error"
		return result
	}

	for _, incomplete := range parser.ValidateOptions(parsed) {
		logger.Warn("question has incomplete options", "source", job.Source, "detail", incomplete.Error())
	}

	result.WordCounts = mapreduce.Reduce(mapreduce.MapAll(parsed.Questions, d.analytics))
	logger.Info("document keyword profile",
		"worker_id", id,
		"source", job.Source,
		"keywords", d.analytics.TopNCounts(doc.Text, 5))

	jsonData, err := questionJSON.MarshalIndent(parsed, "", "  ")
	if err != nil {
		logger.Error("error marshalling questions", "worker_id", id, "source", job.Source, "error", err)
		result.Error = err
		result.ErrorType = "marshal_error"
		result.Result = parsed
		return result
	}

	artifactPath, err := d.manager.Save(job.Source, artifacts.QuestionsFile, jsonData)
	if err != nil {
		logger.Error("error saving artifact", "worker_id", id, "source", job.Source, "error", err)
		result.Error = err
		result.ErrorType = "save_error"
		result.Result = parsed
		return result
	}
	if _, err := d.manager.Save(job.Source, artifacts.SourceFile, []byte(doc.Text)); err != nil {
		logger.Warn("failed to save source copy", "source", job.Source, "error", err)
	}

	result.ArtifactPath = artifactPath
	result.SizeBytes = int64(len(jsonData))
	result.Result = parsed

	if !config.SkipDB && d.database != nil {
		if err := recordRun(d.database, &result); err != nil {
			logger.Warn("failed to record run in database", "source", job.Source, "error", err)
		}
	}

	return result
}

// loadDocument resolves a source to raw exam text: local files are
// read directly, URLs go through the cache and fetcher.
func loadDocument(ctx context.Context, logger *slog.Logger, d *deps, config *Config, source string) (*ingest.Document, error) {
	if !common.IsURL(source) {
		return ingest.FromFile(source)
	}

	if !config.ForceFetch && d.cache != nil {
		if data, hit := d.cache.Get(source); hit {
			logger.Info("cache hit", "source", source)
			return documentFromBody(source, data)
		}
	}

	fetched, err := d.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	if d.cache != nil {
		if err := d.cache.Set(source, fetched.Body); err != nil {
			logger.Warn("failed to cache document", "source", source, "error", err)
		}
	}

	if fetched.IsHTML() {
		return ingest.FromHTML(source, string(fetched.Body))
	}
	return &ingest.Document{Source: source, Text: string(fetched.Body)}, nil
}

// documentFromBody re-ingests a cached body the same way a fresh fetch
// would have been.
func documentFromBody(source string, body []byte) (*ingest.Document, error) {
	res := fetcher.Result{Body: body}
	if res.IsHTML() {
		return ingest.FromHTML(source, string(body))
	}
	return &ingest.Document{Source: source, Text: string(body)}, nil
}

func recordRun(database *db.DB, result *Result) error {
	info := result.Result.ExamInfo
	paperID, err := database.InsertPaper(result.Source, info.Title, info.Year, info.Subject)
	if err != nil {
		return err
	}

	needsReview := 0
	for _, q := range result.Result.Questions {
		if q.NeedsReview {
			needsReview++
		}
	}

	runID, err := database.InsertRun(paperID, result.sessionID, result.Dialect,
		len(result.Result.Questions), needsReview, result.ArtifactPath)
	if err != nil {
		return err
	}

	return database.InsertQuestions(runID, result.Result.Questions)
}
