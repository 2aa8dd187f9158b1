package fhir_dto

type Questionnaire struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id,omitempty"`
	Url          string              `json:"url,omitempty"`
	Name         string              `json:"name,omitempty"`
	Title        string              `json:"title,omitempty"`
	Status       string              `json:"status,omitempty"`
	Meta         *Meta               `json:"meta,omitempty"`
	Extension    []Extension         `json:"extension,omitempty"`
	Item         []QuestionnaireItem `json:"item,omitempty"`
}

type QuestionnaireItem struct {
	LinkID         string                          `json:"linkId"`
	Type           string                          `json:"type"`
	Text           string                          `json:"text,omitempty"`
	TextElement    *Element                        `json:"_text,omitempty"`
	Required       bool                            `json:"required,omitempty"`
	Repeats        bool                            `json:"repeats,omitempty"`
	EnableWhen     []QuestionnaireItemEnableWhen   `json:"enableWhen,omitempty"`
	EnableBehavior string                          `json:"enableBehavior,omitempty"`
	AnswerOption   []QuestionnaireItemAnswerOption `json:"answerOption,omitempty"`
	AnswerValueSet string                          `json:"answerValueSet,omitempty"`
	Extension      []Extension                     `json:"extension,omitempty"`
	Item           []QuestionnaireItem             `json:"item,omitempty"`
}

type QuestionnaireItemEnableWhen struct {
	Question        string     `json:"question"`
	Operator        string     `json:"operator"`
	AnswerBoolean   *bool      `json:"answerBoolean,omitempty"`
	AnswerDecimal   *float64   `json:"answerDecimal,omitempty"`
	AnswerInteger   *int       `json:"answerInteger,omitempty"`
	AnswerDate      string     `json:"answerDate,omitempty"`
	AnswerDateTime  string     `json:"answerDateTime,omitempty"`
	AnswerTime      string     `json:"answerTime,omitempty"`
	AnswerString    string     `json:"answerString,omitempty"`
	AnswerCoding    *Coding    `json:"answerCoding,omitempty"`
	AnswerReference *Reference `json:"answerReference,omitempty"`
}

type QuestionnaireItemAnswerOption struct {
	ValueInteger   *int        `json:"valueInteger,omitempty"`
	ValueDate      string      `json:"valueDate,omitempty"`
	ValueTime      string      `json:"valueTime,omitempty"`
	ValueString    string      `json:"valueString,omitempty"`
	ValueCoding    *Coding     `json:"valueCoding,omitempty"`
	ValueReference *Reference  `json:"valueReference,omitempty"`
	Extension      []Extension `json:"extension,omitempty"`
}
