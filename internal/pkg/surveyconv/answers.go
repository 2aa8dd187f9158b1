package surveyconv

import (
	"strconv"

	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/fhir_dto"
)

// extractChoices converts an item's static answer options into survey
// choices. Dynamic value sets are not resolved here and fail outright; an
// item with neither mechanism simply has no choices.
func extractChoices(item *fhir_dto.QuestionnaireItem) ([]SurveyChoice, error) {
	if item.AnswerValueSet != "" {
		return nil, newError(KindUnsupportedAnswerValueSet, "answer value sets are not currently supported")
	}
	if len(item.AnswerOption) == 0 {
		return nil, nil
	}

	choices := make([]SurveyChoice, 0, len(item.AnswerOption))
	for _, option := range item.AnswerOption {
		choice, err := convertAnswerOption(option)
		if err != nil {
			return nil, err
		}
		choice.OrdinalValue = ordinalValue(option.Extension)
		choices = append(choices, choice)
	}
	return choices, nil
}

// convertAnswerOption tries the value kinds in fixed priority order. Coded
// options contribute their display text as the selectable value and keep the
// full coding for the reverse conversion.
func convertAnswerOption(option fhir_dto.QuestionnaireItemAnswerOption) (SurveyChoice, error) {
	switch {
	case option.ValueInteger != nil:
		return SurveyChoice{
			Value:     *option.ValueInteger,
			Text:      strconv.Itoa(*option.ValueInteger),
			ValueType: "valueInteger",
		}, nil
	case option.ValueDate != "":
		return SurveyChoice{Value: option.ValueDate, Text: option.ValueDate, ValueType: "valueDate"}, nil
	case option.ValueTime != "":
		return SurveyChoice{Value: option.ValueTime, Text: option.ValueTime, ValueType: "valueTime"}, nil
	case option.ValueString != "":
		return SurveyChoice{Value: option.ValueString, Text: option.ValueString, ValueType: "valueString"}, nil
	case option.ValueCoding != nil:
		if option.ValueCoding.Display == "" {
			return SurveyChoice{}, newError(KindMissingCodingDisplay, "answer valueCoding with no display property")
		}
		return SurveyChoice{
			Value:              option.ValueCoding.Display,
			Text:               option.ValueCoding.Display,
			ValueType:          answerKindCoding,
			ValueCodingCode:    option.ValueCoding.Code,
			ValueCodingSystem:  option.ValueCoding.System,
			ValueCodingDisplay: option.ValueCoding.Display,
		}, nil
	default:
		return SurveyChoice{}, newError(KindUnsupportedAnswerKind, "unsupported value[x] in an answerOption")
	}
}

func ordinalValue(extensions []fhir_dto.Extension) float64 {
	ordinalExts := findExtensions(extensions, constvars.ExtensionOrdinalValue)
	if len(ordinalExts) == 0 || ordinalExts[0].ValueDecimal == nil {
		return 0
	}
	return *ordinalExts[0].ValueDecimal
}
