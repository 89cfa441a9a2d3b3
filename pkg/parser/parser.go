// Package parser wires the extraction pipeline together: document-level
// metadata, segmentation into blocks, per-block field recovery, subject
// classification, and record assembly.
//
// The pipeline degrades rather than fails: a malformed question is dropped
// and logged, never fatal. The only hard failures are an empty document
// and zero surviving blocks, both of which come back with a description of
// the input shape the parser expects.
package parser

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/classifier"
	"github.com/paperbank/exam-parser/pkg/dialect"
	"github.com/paperbank/exam-parser/pkg/fields"
	"github.com/paperbank/exam-parser/pkg/metadata"
	"github.com/paperbank/exam-parser/pkg/segmenter"
	"github.com/paperbank/exam-parser/pkg/symbols"
)

// Parser is stateless across calls; one instance may parse many documents
// concurrently.
type Parser struct {
	log *slog.Logger
}

// New builds a Parser. A nil logger falls back to slog's default.
func New(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{log: log}
}

// Parse extracts exam metadata and the full question list from one raw
// document.
func (p *Parser) Parse(doc string, opts models.ParseOptions) (*models.Result, error) {
	opts = opts.Normalize()

	if strings.TrimSpace(doc) == "" {
		return nil, &EmptyDocumentError{}
	}

	info := metadata.Extract(doc)

	d := opts.Dialect
	if d == models.DialectAuto {
		d = dialect.Detect(doc)
	}

	var blocks []segmenter.Block
	switch d {
	case models.DialectLaTeX:
		blocks = segmenter.SectionScoped(doc, opts)
	default:
		blocks = segmenter.LineScan(doc, opts)
	}

	if len(blocks) == 0 {
		return nil, &NoQuestionsError{Dialect: d}
	}

	extractor := fields.NewExtractor(pickNormalizer(d, doc), opts)

	// Keyword voting falls back to the document-level subject when the
	// caller did not name a more specific default.
	defaultSubject := opts.DefaultSubject
	if defaultSubject == models.SubjectMixed && info.Subject != models.SubjectMixed {
		defaultSubject = info.Subject
	}

	questions := make([]models.QuestionRecord, 0, len(blocks))
	for _, block := range blocks {
		rec, ok := p.buildRecord(block, extractor, info, opts, defaultSubject)
		if !ok {
			continue
		}
		rec.QuestionIndex = strconv.Itoa(len(questions) + 1)
		questions = append(questions, rec)
	}

	return &models.Result{ExamInfo: info, Questions: questions}, nil
}

// buildRecord extracts one block into a record. A panic inside the
// extraction cascades (malformed structure) drops just this question; the
// overall parse never fails because one block did.
func (p *Parser) buildRecord(block segmenter.Block, extractor *fields.Extractor, info models.ExamInfo, opts models.ParseOptions, defaultSubject string) (rec models.QuestionRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("dropping malformed question", "number", block.Number, "panic", r)
			ok = false
		}
	}()

	f := extractor.Extract(block.Content)

	number, _ := strconv.Atoi(block.Number)
	subject := classifier.Classify(f.Text, classifier.Context{
		SectionSubject: block.SectionSubject,
		RangeSubject:   opts.RangeSubject(number),
		Default:        defaultSubject,
	})

	correctText := ""
	if opt, present := f.Options[f.CorrectAnswer]; present {
		correctText = opt.Text
	}

	images := f.Images
	if images == nil {
		images = []models.ImageRef{}
	}

	return models.QuestionRecord{
		QuestionID:        info.Year + "Q" + block.Number,
		Text:              f.Text,
		TextImages:        images,
		PossibleAnswers:   f.Options,
		CorrectAnswer:     f.CorrectAnswer,
		CorrectAnswerText: correctText,
		Subject:           subject,
		Solution:          f.Solution,
		Marks:             f.Marks,
		Number:            block.Number,
		Source:            f.Source,
		NeedsReview:       f.Source == models.AnswerDefaulted,
	}, true
}

// pickNormalizer chooses the symbols variant for the dialect. Markdown
// documents that actually carry $ math spans keep them verbatim for a
// downstream renderer; everything else gets the full LaTeX cleanup.
func pickNormalizer(d models.Dialect, doc string) func(string) string {
	if d == models.DialectMarkdown && strings.Contains(doc, "$") {
		return symbols.NormalizeMarkdown
	}
	return symbols.Normalize
}

// ValidateOptions checks every multiple-choice question for a complete
// A-D option set and returns one structured error per incomplete question.
// Questions with an empty option map are numeric-answer questions and are
// skipped.
func ValidateOptions(result *models.Result) []*IncompleteOptionsError {
	var errs []*IncompleteOptionsError
	for _, q := range result.Questions {
		if len(q.PossibleAnswers) == 0 || len(q.PossibleAnswers) == len(models.Letters) {
			continue
		}
		var missing []models.Letter
		for _, l := range models.Letters {
			if _, present := q.PossibleAnswers[l]; !present {
				missing = append(missing, l)
			}
		}
		errs = append(errs, &IncompleteOptionsError{
			Number:  q.Number,
			Index:   q.QuestionIndex,
			Missing: missing,
		})
	}
	return errs
}
