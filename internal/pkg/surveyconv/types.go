package surveyconv

// SurveyDefinition is the renderer-agnostic form document produced from a
// FHIR Questionnaire. Entry mode random fills Questions, the paged modes
// fill Pages; CalculatedValues is always present and always flat.
type SurveyDefinition struct {
	Pages                 []SurveyPage      `json:"pages,omitempty"`
	Questions             []SurveyElement   `json:"questions,omitempty"`
	GoNextPageAutomatic   *bool             `json:"goNextPageAutomatic,omitempty"`
	ShowNavigationButtons *bool             `json:"showNavigationButtons,omitempty"`
	CalculatedValues      []CalculatedValue `json:"calculatedValues"`
}

// SurveyPage wraps exactly one converted root item.
type SurveyPage struct {
	Questions []SurveyElement `json:"questions"`
}

type SurveyElement struct {
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	InputType  string          `json:"inputType,omitempty"`
	Title      string          `json:"title,omitempty"`
	HTML       string          `json:"html,omitempty"`
	VisibleIf  string          `json:"visibleIf,omitempty"`
	RequiredIf string          `json:"requiredIf,omitempty"`
	IsRequired bool            `json:"isRequired,omitempty"`
	Expression string          `json:"expression,omitempty"`
	Choices    []SurveyChoice  `json:"choices,omitempty"`
	Elements   []SurveyElement `json:"elements,omitempty"`
}

// SurveyChoice is one selectable answer. The ValueType and ValueCoding*
// fields preserve the FHIR answer kind so the reverse conversion can retype
// submitted values without re-reading the source extensions.
type SurveyChoice struct {
	Value              any     `json:"value"`
	Text               string  `json:"text"`
	OrdinalValue       float64 `json:"ordinalValue"`
	ValueType          string  `json:"valueType,omitempty"`
	ValueCodingCode    string  `json:"valueCodingCode,omitempty"`
	ValueCodingSystem  string  `json:"valueCodingSystem,omitempty"`
	ValueCodingDisplay string  `json:"valueCodingDisplay,omitempty"`
}

// CalculatedValue names an external-language expression and the call-site
// string the renderer hands to the expression evaluator.
type CalculatedValue struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

const (
	// ElementTypeExpression marks an element whose value is computed by the
	// external evaluator instead of entered by the respondent.
	ElementTypeExpression = "expression"

	answerKindCoding = "coding"
)
