package surveyconv

import (
	"strconv"
	"time"

	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/fhir_dto"
)

// BuildQuestionnaireResponse turns a completed answer set back into a FHIR
// QuestionnaireResponse. The walk follows the questionnaire's item order, so
// only items that actually received an answer are emitted; answers without a
// matching item are ignored.
func BuildQuestionnaireResponse(questionnaire *fhir_dto.Questionnaire, answers map[string][]any) (*fhir_dto.QuestionnaireResponse, error) {
	if questionnaire == nil || questionnaire.ResourceType != constvars.ResourceQuestionnaire {
		return nil, newError(KindInvalidResourceType, "only FHIR Questionnaire resources are supported")
	}

	response := &fhir_dto.QuestionnaireResponse{
		ResourceType:  constvars.ResourceQuestionnaireResponse,
		Questionnaire: questionnaire.Url,
		Status:        constvars.FhirQuestionnaireResponseStatusInProgress,
		Authored:      currentISOTimestamp(),
		Item:          []fhir_dto.QuestionnaireResponseItem{},
	}

	for i := range questionnaire.Item {
		item := &questionnaire.Item[i]
		values, ok := answers[item.LinkID]
		if !ok {
			continue
		}
		responseItem, err := buildResponseItem(item, values)
		if err != nil {
			return nil, err
		}
		if len(responseItem.Answer) > 0 {
			response.Item = append(response.Item, responseItem)
		}
	}
	return response, nil
}

func buildResponseItem(item *fhir_dto.QuestionnaireItem, values []any) (fhir_dto.QuestionnaireResponseItem, error) {
	responseItem := fhir_dto.QuestionnaireResponseItem{LinkID: item.LinkID}

	if item.Type == "choice" {
		choices, err := extractChoices(item)
		if err != nil {
			return fhir_dto.QuestionnaireResponseItem{}, err
		}
		for _, value := range values {
			choice, ok := matchChoice(choices, value)
			if !ok {
				continue
			}
			responseItem.Answer = append(responseItem.Answer, choiceAnswer(choice, value))
		}
		return responseItem, nil
	}

	for _, value := range values {
		answer, ok := typedAnswer(item.Type, value)
		if !ok {
			continue
		}
		responseItem.Answer = append(responseItem.Answer, answer)
	}
	return responseItem, nil
}

// matchChoice finds the declared choice a submitted value refers to.
// Submitted values arrive as decoded JSON, so the match is on the rendered
// text rather than on the dynamic type.
func matchChoice(choices []SurveyChoice, value any) (SurveyChoice, bool) {
	rendered := renderValue(value)
	for _, choice := range choices {
		if choice.Text == rendered {
			return choice, true
		}
	}
	return SurveyChoice{}, false
}

func choiceAnswer(choice SurveyChoice, value any) fhir_dto.QuestionnaireResponseItemAnswer {
	if choice.ValueType == answerKindCoding {
		return fhir_dto.QuestionnaireResponseItemAnswer{
			ValueCoding: &fhir_dto.Coding{
				Code:    choice.ValueCodingCode,
				System:  choice.ValueCodingSystem,
				Display: choice.ValueCodingDisplay,
			},
		}
	}

	var answer fhir_dto.QuestionnaireResponseItemAnswer
	switch choice.ValueType {
	case "valueInteger":
		if number, ok := toInt(value); ok {
			answer.ValueInteger = &number
		}
	case "valueDate":
		answer.ValueDate = renderValue(value)
	case "valueTime":
		answer.ValueTime = renderValue(value)
	default:
		answer.ValueString = renderValue(value)
	}
	return answer
}

// typedAnswer re-types a submitted value under the item's declared FHIR
// value kind. Types that never carry answers (group, display) yield nothing.
func typedAnswer(itemType string, value any) (fhir_dto.QuestionnaireResponseItemAnswer, bool) {
	var answer fhir_dto.QuestionnaireResponseItemAnswer
	switch itemType {
	case "boolean":
		flag, ok := value.(bool)
		if !ok {
			return answer, false
		}
		answer.ValueBoolean = &flag
	case "decimal":
		number, ok := toFloat(value)
		if !ok {
			return answer, false
		}
		answer.ValueDecimal = &number
	case "integer":
		number, ok := toInt(value)
		if !ok {
			return answer, false
		}
		answer.ValueInteger = &number
	case "date":
		answer.ValueDate = renderValue(value)
	case "dateTime":
		answer.ValueDateTime = renderValue(value)
	case "time":
		answer.ValueTime = renderValue(value)
	case "string", "text":
		answer.ValueString = renderValue(value)
	case "url":
		answer.ValueUri = renderValue(value)
	default:
		return answer, false
	}
	return answer, true
}

func toInt(value any) (int, bool) {
	switch number := value.(type) {
	case int:
		return number, true
	case int64:
		return int(number), true
	case float64:
		return int(number), true
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	switch number := value.(type) {
	case float64:
		return number, true
	case int:
		return float64(number), true
	case int64:
		return float64(number), true
	default:
		return 0, false
	}
}

func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// currentISOTimestamp renders local wall-clock time as ISO-8601 with
// millisecond precision and no zone designator.
func currentISOTimestamp() string {
	return time.Now().Format("2006-01-02T15:04:05.000")
}
