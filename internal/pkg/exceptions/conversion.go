package exceptions

import (
	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/surveyconv"
)

// ErrSurveyConversion maps a converter error onto the HTTP error contract.
// Malformed input is a 400, content the converter cannot represent is a 422.
func ErrSurveyConversion(err error) *CustomError {
	statusCode := constvars.StatusInternalServerError
	switch surveyconv.KindOf(err) {
	case surveyconv.KindInvalidResourceType, surveyconv.KindInvalidEntryMode:
		statusCode = constvars.StatusBadRequest
	case surveyconv.KindUnsupportedItemType,
		surveyconv.KindUnsupportedAnswerValueSet,
		surveyconv.KindUnsupportedAnswerKind,
		surveyconv.KindMissingCodingDisplay,
		surveyconv.KindUnsupportedExpressionLanguage,
		surveyconv.KindMultipleExpressionsNotAllowed,
		surveyconv.KindMissingEvaluator:
		statusCode = constvars.StatusUnprocessableEntity
	}
	return BuildNewCustomError(err, statusCode, constvars.ErrClientQuestionnaireNotConvertible, constvars.ErrDevSurveyConversionFailed)
}

// ErrSurveyResponseBuild is the reverse-direction counterpart: the answer
// set could not be retyped into a QuestionnaireResponse.
func ErrSurveyResponseBuild(err error) *CustomError {
	statusCode := constvars.StatusInternalServerError
	switch surveyconv.KindOf(err) {
	case surveyconv.KindInvalidResourceType:
		statusCode = constvars.StatusBadRequest
	case surveyconv.KindUnsupportedAnswerValueSet,
		surveyconv.KindUnsupportedAnswerKind,
		surveyconv.KindMissingCodingDisplay:
		statusCode = constvars.StatusUnprocessableEntity
	}
	return BuildNewCustomError(err, statusCode, constvars.ErrClientSurveyResponseNotBuildable, constvars.ErrDevSurveyResponseBuild)
}
