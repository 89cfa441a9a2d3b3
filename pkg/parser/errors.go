package parser

import (
	"fmt"
	"strings"

	"github.com/paperbank/exam-parser/models"
	"github.com/paperbank/exam-parser/pkg/help"
)

// NoQuestionsError is the document-level hard failure: segmentation found
// zero acceptable blocks, so there is nothing to degrade gracefully into.
// The message carries the expected-input hint because an empty result
// cannot tell "nothing parsed" from "nothing present".
type NoQuestionsError struct {
	Dialect models.Dialect
}

func (e *NoQuestionsError) Error() string {
	return fmt.Sprintf("no question blocks found (dialect %s); %s", e.Dialect, help.InputShapeHint)
}

// EmptyDocumentError is raised before segmentation even starts.
type EmptyDocumentError struct{}

func (e *EmptyDocumentError) Error() string {
	return "empty document; " + help.InputShapeHint
}

// IncompleteOptionsError reports a question whose option set is partially
// recovered. It names the question and the missing letters so a human
// editor can fill them in rather than the parser guessing content.
//
// A question with no options at all is not incomplete; it is a
// numeric-answer question and is never reported here.
type IncompleteOptionsError struct {
	Number  string
	Index   string
	Missing []models.Letter
}

func (e *IncompleteOptionsError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, l := range e.Missing {
		missing[i] = string(l)
	}
	return fmt.Sprintf("question %s: options %s not recovered", e.Number, strings.Join(missing, ", "))
}
