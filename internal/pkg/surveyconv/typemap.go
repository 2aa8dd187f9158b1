package surveyconv

// mapElementType maps a FHIR item type to the survey control type. Choice
// items become checkboxes when the item repeats, radio groups otherwise.
func mapElementType(fhirItemType string, repeats bool) (string, error) {
	switch fhirItemType {
	case "boolean":
		return "boolean", nil
	case "choice":
		if repeats {
			return "checkbox", nil
		}
		return "radiogroup", nil
	case "date", "dateTime", "decimal", "integer", "string", "time", "url":
		return "text", nil
	case "display":
		return "html", nil
	case "group":
		return "panel", nil
	case "text":
		return "comment", nil
	default:
		return "", newError(KindUnsupportedItemType, "unsupported item type: "+fhirItemType)
	}
}

// mapInputType returns the browser input hint for free-text controls, empty
// when the type has no natural hint.
func mapInputType(fhirItemType string) string {
	switch fhirItemType {
	case "date":
		return "date"
	case "dateTime":
		return "datetime-local"
	case "decimal":
		return "text"
	case "integer":
		return "number"
	case "string":
		return "text"
	case "time":
		return "time"
	case "url":
		return "url"
	default:
		return ""
	}
}
