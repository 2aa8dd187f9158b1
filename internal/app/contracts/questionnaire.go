package contracts

import (
	"context"

	"formgen-service/internal/pkg/fhir_dto"
)

type QuestionnaireFhirClient interface {
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error)
}
