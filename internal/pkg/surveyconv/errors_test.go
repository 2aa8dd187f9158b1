package surveyconv

import (
	"errors"
	"testing"

	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

func singleItemQuestionnaire(item fhir_dto.QuestionnaireItem) *fhir_dto.Questionnaire {
	return &fhir_dto.Questionnaire{
		ResourceType: constvars.ResourceQuestionnaire,
		Item:         []fhir_dto.QuestionnaireItem{item},
	}
}

func TestConvertQuestionnaireRejectsOtherResourceTypes(t *testing.T) {
	definition, err := ConvertQuestionnaire(&fhir_dto.Questionnaire{ResourceType: "Patient"})
	assert.Nil(t, definition)
	assert.Error(t, err)
	assert.Equal(t, KindInvalidResourceType, KindOf(err))
	assert.EqualError(t, err, "only FHIR Questionnaire resources are supported")
}

func TestConvertQuestionnaireRejectsUnknownEntryMode(t *testing.T) {
	questionnaire := choiceQuestionnaire()
	questionnaire.Extension = []fhir_dto.Extension{
		{Url: constvars.ExtensionEntryMode, ValueCode: "randomize"},
	}
	definition, err := ConvertQuestionnaire(questionnaire)
	assert.Nil(t, definition)
	assert.Equal(t, KindInvalidEntryMode, KindOf(err))
}

func TestConvertQuestionnaireRejectsUnsupportedItemType(t *testing.T) {
	definition, err := ConvertQuestionnaire(singleItemQuestionnaire(fhir_dto.QuestionnaireItem{
		LinkID: "1",
		Type:   "attachment",
		Text:   "Upload a file",
	}))
	assert.Nil(t, definition)
	assert.Equal(t, KindUnsupportedItemType, KindOf(err))
}

func TestConvertQuestionnaireRejectsAnswerValueSets(t *testing.T) {
	definition, err := ConvertQuestionnaire(singleItemQuestionnaire(fhir_dto.QuestionnaireItem{
		LinkID:         "1",
		Type:           "choice",
		Text:           "Pick one",
		AnswerValueSet: "http://example.org/fhir/ValueSet/answers",
	}))
	assert.Nil(t, definition)
	assert.Equal(t, KindUnsupportedAnswerValueSet, KindOf(err))
	assert.EqualError(t, err, "answer value sets are not currently supported")
}

func TestConvertQuestionnaireRejectsUnsupportedAnswerKinds(t *testing.T) {
	definition, err := ConvertQuestionnaire(singleItemQuestionnaire(fhir_dto.QuestionnaireItem{
		LinkID: "1",
		Type:   "choice",
		Text:   "Pick one",
		AnswerOption: []fhir_dto.QuestionnaireItemAnswerOption{
			{ValueReference: &fhir_dto.Reference{Reference: "Patient/1"}},
		},
	}))
	assert.Nil(t, definition)
	assert.Equal(t, KindUnsupportedAnswerKind, KindOf(err))
}

func TestConvertQuestionnaireRejectsCodingWithoutDisplay(t *testing.T) {
	definition, err := ConvertQuestionnaire(singleItemQuestionnaire(fhir_dto.QuestionnaireItem{
		LinkID: "1",
		Type:   "choice",
		Text:   "Pick one",
		AnswerOption: []fhir_dto.QuestionnaireItemAnswerOption{
			{ValueCoding: &fhir_dto.Coding{Code: "a", System: "http://example.org/cs"}},
		},
	}))
	assert.Nil(t, definition)
	assert.Equal(t, KindMissingCodingDisplay, KindOf(err))
	assert.EqualError(t, err, "answer valueCoding with no display property")
}

func TestConvertQuestionnaireRejectsUnsupportedExpressionLanguage(t *testing.T) {
	definition, err := ConvertQuestionnaire(singleItemQuestionnaire(fhir_dto.QuestionnaireItem{
		LinkID: "1",
		Type:   "integer",
		Text:   "Score",
		Extension: []fhir_dto.Extension{
			{
				Url: constvars.ExtensionCalculatedExpression,
				ValueExpression: &fhir_dto.Expression{
					Language:   "text/fhirpath",
					Expression: "Score",
				},
			},
		},
	}))
	assert.Nil(t, definition)
	assert.Equal(t, KindUnsupportedExpressionLanguage, KindOf(err))
}

func TestConvertQuestionnaireRejectsMultipleCalculatedExpressions(t *testing.T) {
	extension := fhir_dto.Extension{
		Url: constvars.ExtensionCalculatedExpression,
		ValueExpression: &fhir_dto.Expression{
			Language:   constvars.FhirExpressionLanguageCQL,
			Expression: "Score",
		},
	}
	definition, err := ConvertQuestionnaire(singleItemQuestionnaire(fhir_dto.QuestionnaireItem{
		LinkID:    "1",
		Type:      "integer",
		Text:      "Score",
		Extension: []fhir_dto.Extension{extension, extension},
	}))
	assert.Nil(t, definition)
	assert.Equal(t, KindMultipleExpressionsNotAllowed, KindOf(err))
	assert.EqualError(t, err, "only one calculatedExpression allowed per item")
}

func TestConvertQuestionnaireRejectsMultipleEnableWhenExpressions(t *testing.T) {
	extension := fhir_dto.Extension{
		Url: constvars.ExtensionEnableWhenExpression,
		ValueExpression: &fhir_dto.Expression{
			Language:   constvars.FhirExpressionLanguageCQL,
			Expression: "ShouldShow",
		},
	}
	definition, err := ConvertQuestionnaire(singleItemQuestionnaire(fhir_dto.QuestionnaireItem{
		LinkID:    "1",
		Type:      "string",
		Text:      "Details",
		Extension: []fhir_dto.Extension{extension, extension},
	}))
	assert.Nil(t, definition)
	assert.Equal(t, KindMultipleExpressionsNotAllowed, KindOf(err))
	assert.EqualError(t, err, "only one enableWhenExpression allowed per item")
}

func TestKindOfForeignErrors(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestErrMissingEvaluator(t *testing.T) {
	err := ErrMissingEvaluator()
	assert.Equal(t, KindMissingEvaluator, KindOf(err))
}
