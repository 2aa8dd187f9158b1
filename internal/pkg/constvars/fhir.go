package constvars

const (
	ResourceQuestionnaire         = "Questionnaire"
	ResourceQuestionnaireResponse = "QuestionnaireResponse"
	ResourceOperationOutcome      = "OperationOutcome"
)

// SDC and core extension URLs read by the survey converter. Call sites match
// by URL prefix so versioned canonicals (|x.y.z) still resolve.
const (
	ExtensionEntryMode            = "http://hl7.org/fhir/uv/sdc/StructureDefinition/sdc-questionnaire-entryMode"
	ExtensionCalculatedExpression = "http://hl7.org/fhir/uv/sdc/StructureDefinition/sdc-questionnaire-calculatedExpression"
	ExtensionEnableWhenExpression = "http://hl7.org/fhir/uv/sdc/StructureDefinition/sdc-questionnaire-enableWhenExpression"
	ExtensionOrdinalValue         = "http://hl7.org/fhir/StructureDefinition/ordinalValue"
	ExtensionRenderingXHTML       = "http://hl7.org/fhir/StructureDefinition/rendering-xhtml"
	ExtensionCQFCalculatedValue   = "http://hl7.org/fhir/StructureDefinition/cqf-calculatedValue"
)

const (
	FhirEntryModeSequential = "sequential"
	FhirEntryModePriorEdit  = "prior-edit"
	FhirEntryModeRandom     = "random"
)

const (
	FhirEnableBehaviorAll = "all"
	FhirEnableBehaviorAny = "any"
)

const (
	FhirExpressionLanguageCQL = "text/cql"
)

const (
	FhirQuestionnaireResponseStatusInProgress = "in-progress"
	FhirQuestionnaireResponseStatusCompleted  = "completed"
)
