package surveyconv

import "errors"

// ErrorKind classifies conversion failures so the transport layer can map
// them onto the right status code without parsing messages.
type ErrorKind string

const (
	KindInvalidResourceType           ErrorKind = "invalid_resource_type"
	KindInvalidEntryMode              ErrorKind = "invalid_entry_mode"
	KindUnsupportedItemType           ErrorKind = "unsupported_item_type"
	KindUnsupportedAnswerValueSet     ErrorKind = "unsupported_answer_value_set"
	KindUnsupportedAnswerKind         ErrorKind = "unsupported_answer_kind"
	KindMissingCodingDisplay          ErrorKind = "missing_coding_display"
	KindUnsupportedExpressionLanguage ErrorKind = "unsupported_expression_language"
	KindMultipleExpressionsNotAllowed ErrorKind = "multiple_expressions_not_allowed"
	KindMissingEvaluator              ErrorKind = "missing_evaluator"
)

type ConversionError struct {
	Kind    ErrorKind
	Message string
}

func (e *ConversionError) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *ConversionError {
	return &ConversionError{Kind: kind, Message: message}
}

// KindOf returns the kind of a conversion error, or the zero kind when the
// error did not originate from this package.
func KindOf(err error) ErrorKind {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr.Kind
	}
	return ""
}

// ErrMissingEvaluator is raised by callers that received a definition with
// calculated expressions but have no evaluator capability to hand it to.
func ErrMissingEvaluator() error {
	return newError(KindMissingEvaluator, "questionnaire requires an expression evaluator but none is available")
}
