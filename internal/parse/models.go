package parse

import (
	"time"

	"github.com/paperbank/exam-parser/models"
)

// Job defines one source document for a worker to parse.
type Job struct {
	Source string
	Opts   models.ParseOptions
}

// Result holds the outcome of a processed job.
type Result struct {
	Source       string
	ArtifactPath string
	Dialect      string
	Result       *models.Result
	Error        error
	ErrorType    string
	WordCounts   map[string]int
	SizeBytes    int64 // Cached artifact size to avoid redundant os.Stat() calls

	sessionID string
}

// Config is the runtime configuration assembled from CLI flags.
type Config struct {
	Sources     []string
	SessionID   string
	WorkerCount int
	Opts        models.ParseOptions
	OutputDir   string
	CacheDir    string
	CacheTTL    time.Duration
	ForceFetch  bool
	SkipDB      bool
}
