package surveyconv

import (
	"strconv"
	"strings"

	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/fhir_dto"
)

// compileVisibility turns an item's enableWhen conditions, or its
// enableWhenExpression extension, into one boolean-expression string. The
// expression mechanism replaces the condition list when both are present.
func compileVisibility(item *fhir_dto.QuestionnaireItem) (string, []CalculatedValue, error) {
	var conditions string
	if len(item.EnableWhen) > 0 {
		rendered := make([]string, 0, len(item.EnableWhen))
		for _, condition := range item.EnableWhen {
			rendered = append(rendered, renderCondition(condition))
		}
		joiner := " and "
		if item.EnableBehavior == constvars.FhirEnableBehaviorAny {
			joiner = " or "
		}
		conditions = strings.Join(rendered, joiner)
	}

	expressionExt, err := findSingleExtension(item.Extension, constvars.ExtensionEnableWhenExpression, "only one enableWhenExpression allowed per item")
	if err != nil {
		return "", nil, err
	}
	if expressionExt != nil {
		valueExpression := expressionExt.ValueExpression
		if valueExpression == nil || valueExpression.Language != constvars.FhirExpressionLanguageCQL {
			return "", nil, newError(KindUnsupportedExpressionLanguage, "enableWhenExpression extension does not specify a supported language")
		}
		conditions = "{" + valueExpression.Expression + "} == true"
		definitions := []CalculatedValue{{
			Name:       valueExpression.Expression,
			Expression: placeholderInvocation(valueExpression.Expression),
		}}
		return conditions, definitions, nil
	}
	return conditions, nil, nil
}

// renderCondition renders one enableWhen condition. The exists operator
// tests against undefined and ignores the comparand entirely.
func renderCondition(condition fhir_dto.QuestionnaireItemEnableWhen) string {
	if condition.Operator == "exists" {
		return "{" + condition.Question + "} != undefined"
	}
	return "{" + condition.Question + "} " + condition.Operator + " '" + conditionComparand(condition) + "'"
}

func conditionComparand(condition fhir_dto.QuestionnaireItemEnableWhen) string {
	switch {
	case condition.AnswerBoolean != nil:
		return strconv.FormatBool(*condition.AnswerBoolean)
	case condition.AnswerDecimal != nil:
		return strconv.FormatFloat(*condition.AnswerDecimal, 'f', -1, 64)
	case condition.AnswerInteger != nil:
		return strconv.Itoa(*condition.AnswerInteger)
	case condition.AnswerDate != "":
		return condition.AnswerDate
	case condition.AnswerDateTime != "":
		return condition.AnswerDateTime
	case condition.AnswerTime != "":
		return condition.AnswerTime
	case condition.AnswerString != "":
		return condition.AnswerString
	case condition.AnswerCoding != nil:
		return condition.AnswerCoding.Display
	case condition.AnswerReference != nil:
		return condition.AnswerReference.Reference
	default:
		return ""
	}
}
