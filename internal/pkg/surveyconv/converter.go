package surveyconv

import (
	"strings"

	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/fhir_dto"
)

// ConvertQuestionnaire converts a FHIR Questionnaire into a renderer-ready
// survey definition. The walk is depth-first preorder; calculated values
// produced anywhere in the tree are hoisted to the top-level list.
func ConvertQuestionnaire(questionnaire *fhir_dto.Questionnaire) (*SurveyDefinition, error) {
	if questionnaire == nil || questionnaire.ResourceType != constvars.ResourceQuestionnaire {
		return nil, newError(KindInvalidResourceType, "only FHIR Questionnaire resources are supported")
	}

	entryMode, err := resolveEntryMode(questionnaire.Extension)
	if err != nil {
		return nil, err
	}

	definition := &SurveyDefinition{CalculatedValues: []CalculatedValue{}}
	if entryMode == constvars.FhirEntryModeSequential {
		autoAdvance := true
		showNavigation := false
		definition.GoNextPageAutomatic = &autoAdvance
		definition.ShowNavigationButtons = &showNavigation
	}

	for i := range questionnaire.Item {
		element, definitions, err := convertItem(&questionnaire.Item[i])
		if err != nil {
			return nil, err
		}
		if entryMode == constvars.FhirEntryModeRandom {
			definition.Questions = append(definition.Questions, element)
		} else {
			definition.Pages = append(definition.Pages, SurveyPage{Questions: []SurveyElement{element}})
		}
		definition.CalculatedValues = append(definition.CalculatedValues, definitions...)
	}
	return definition, nil
}

func resolveEntryMode(extensions []fhir_dto.Extension) (string, error) {
	entryModeExts := findExtensions(extensions, constvars.ExtensionEntryMode)
	if len(entryModeExts) == 0 {
		return constvars.FhirEntryModePriorEdit, nil
	}
	switch code := entryModeExts[0].ValueCode; code {
	case constvars.FhirEntryModeSequential, constvars.FhirEntryModePriorEdit, constvars.FhirEntryModeRandom:
		return code, nil
	default:
		return "", newError(KindInvalidEntryMode, "entryMode extension does not specify a supported entry mode")
	}
}

// convertItem converts one item and its subtree. It returns the element
// together with every calculated value the subtree contributed so the caller
// can flatten them into the document's top-level list.
func convertItem(item *fhir_dto.QuestionnaireItem) (SurveyElement, []CalculatedValue, error) {
	elementType, err := mapElementType(item.Type, item.Repeats)
	if err != nil {
		return SurveyElement{}, nil, err
	}
	element := SurveyElement{
		Name:      item.LinkID,
		Type:      elementType,
		InputType: mapInputType(item.Type),
	}
	var definitions []CalculatedValue

	extended := textExtensions(item.TextElement)
	if len(extended.calculated) > 0 {
		placeholders := make([]string, 0, len(extended.calculated))
		for _, definition := range extended.calculated {
			placeholders = append(placeholders, "{"+definition.Name+"}")
			definitions = append(definitions, definition)
		}
		element.Title = strings.Join(placeholders, " ")
	} else {
		element.Title = item.Text
	}
	element.HTML = extended.html
	if element.HTML == "" && elementType == "html" {
		element.HTML = item.Text
	}

	conditions, visibilityDefinitions, err := compileVisibility(item)
	if err != nil {
		return SurveyElement{}, nil, err
	}
	if conditions != "" {
		element.VisibleIf = conditions
	}
	definitions = append(definitions, visibilityDefinitions...)

	if item.Required {
		if conditions != "" {
			element.RequiredIf = conditions
		} else {
			element.IsRequired = true
		}
	}

	choices, err := extractChoices(item)
	if err != nil {
		return SurveyElement{}, nil, err
	}
	element.Choices = choices

	calculatedExt, err := findSingleExtension(item.Extension, constvars.ExtensionCalculatedExpression, "only one calculatedExpression allowed per item")
	if err != nil {
		return SurveyElement{}, nil, err
	}
	if calculatedExt != nil {
		valueExpression := calculatedExt.ValueExpression
		if valueExpression == nil || valueExpression.Language != constvars.FhirExpressionLanguageCQL {
			return SurveyElement{}, nil, newError(KindUnsupportedExpressionLanguage, "calculatedExpression extension does not specify a supported language")
		}
		element.Type = ElementTypeExpression
		element.Expression = placeholderInvocation(valueExpression.Expression)
		definitions = append(definitions, CalculatedValue{
			Name:       valueExpression.Expression,
			Expression: element.Expression,
		})
	}

	for i := range item.Item {
		child, childDefinitions, err := convertItem(&item.Item[i])
		if err != nil {
			return SurveyElement{}, nil, err
		}
		element.Elements = append(element.Elements, child)
		definitions = append(definitions, childDefinitions...)
	}
	return element, definitions, nil
}

type extendedText struct {
	html       string
	calculated []CalculatedValue
}

// textExtensions reads the extensions of an item's text primitive: xhtml
// fragments are concatenated into markup, cqf-calculatedValue entries become
// named placeholder definitions.
func textExtensions(text *fhir_dto.Element) extendedText {
	var extended extendedText
	if text == nil {
		return extended
	}
	for _, ext := range findExtensions(text.Extension, constvars.ExtensionRenderingXHTML) {
		extended.html += ext.ValueString
	}
	for _, ext := range findExtensions(text.Extension, constvars.ExtensionCQFCalculatedValue) {
		extended.calculated = append(extended.calculated, CalculatedValue{
			Name:       ext.ValueString,
			Expression: placeholderInvocation(ext.ValueString),
		})
	}
	return extended
}

// NeedsExpressionEvaluator reports whether the definition references the
// external expression evaluator. Every placeholder source contributes a
// top-level calculated value, so the list is the single thing to check.
func NeedsExpressionEvaluator(definition *SurveyDefinition) bool {
	return definition != nil && len(definition.CalculatedValues) > 0
}
