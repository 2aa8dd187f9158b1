package requests

import "formgen-service/internal/pkg/fhir_dto"

// ConvertSurvey carries an inline Questionnaire resource to convert. The
// evaluator flag overrides the configured default when the caller states
// explicitly whether its renderer has an expression evaluator wired in.
type ConvertSurvey struct {
	Questionnaire          *fhir_dto.Questionnaire
	HasExpressionEvaluator *bool
}

type SubmitSurveyResponse struct {
	Answers map[string]interface{} `json:"answers" validate:"required,min=1"`
	Subject string                 `json:"subject,omitempty"`
}
