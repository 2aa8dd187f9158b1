package fhir_dto

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Version string `json:"version,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type Meta struct {
	VersionId   string   `json:"versionId,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
	Source      string   `json:"source,omitempty"`
	Profile     []string `json:"profile,omitempty"`
	Security    []Coding `json:"security,omitempty"`
	Tag         []Coding `json:"tag,omitempty"`
}

// Expression is the FHIR Expression datatype carried by SDC extensions.
type Expression struct {
	Description string `json:"description,omitempty"`
	Name        string `json:"name,omitempty"`
	Language    string `json:"language,omitempty"`
	Expression  string `json:"expression,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// Extension is the subset of value[x] choices read by this service.
type Extension struct {
	Url             string      `json:"url"`
	ValueCode       string      `json:"valueCode,omitempty"`
	ValueString     string      `json:"valueString,omitempty"`
	ValueBoolean    *bool       `json:"valueBoolean,omitempty"`
	ValueDecimal    *float64    `json:"valueDecimal,omitempty"`
	ValueInteger    *int        `json:"valueInteger,omitempty"`
	ValueCoding     *Coding     `json:"valueCoding,omitempty"`
	ValueExpression *Expression `json:"valueExpression,omitempty"`
}

// Element carries the extensions of a primitive field, per the FHIR JSON
// representation of primitive extensions (the underscore-prefixed sibling).
type Element struct {
	Extension []Extension `json:"extension,omitempty"`
}

type OperationOutcome struct {
	ResourceType string                  `json:"resourceType"`
	Issue        []OperationOutcomeIssue `json:"issue,omitempty"`
}

type OperationOutcomeIssue struct {
	Severity    string `json:"severity,omitempty"`
	Code        string `json:"code,omitempty"`
	Diagnostics string `json:"diagnostics,omitempty"`
}
