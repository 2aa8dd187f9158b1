package surveyconv

import (
	"strings"

	"formgen-service/internal/pkg/fhir_dto"
)

// findExtensions returns every extension whose url starts with the given
// canonical. Matching by prefix keeps versioned canonicals (url|x.y) valid.
func findExtensions(extensions []fhir_dto.Extension, canonical string) []fhir_dto.Extension {
	var matched []fhir_dto.Extension
	for _, ext := range extensions {
		if strings.HasPrefix(ext.Url, canonical) {
			matched = append(matched, ext)
		}
	}
	return matched
}

// findSingleExtension enforces the at-most-one constraint carried by the
// entry-mode, calculatedExpression and enableWhenExpression canonicals.
func findSingleExtension(extensions []fhir_dto.Extension, canonical, constraintMessage string) (*fhir_dto.Extension, error) {
	matched := findExtensions(extensions, canonical)
	switch len(matched) {
	case 0:
		return nil, nil
	case 1:
		return &matched[0], nil
	default:
		return nil, newError(KindMultipleExpressionsNotAllowed, constraintMessage)
	}
}

// placeholderInvocation renders the opaque call-site string handed to the
// external expression evaluator. The converter never evaluates it.
func placeholderInvocation(expression string) string {
	return "evaluateExpression('" + expression + "')"
}
