package contracts

import (
	"context"

	"formgen-service/internal/pkg/dto/requests"
	"formgen-service/internal/pkg/dto/responses"
	"formgen-service/internal/pkg/surveyconv"
)

type SurveyUsecase interface {
	ConvertSurvey(ctx context.Context, request *requests.ConvertSurvey) (*surveyconv.SurveyDefinition, error)
	GetSurvey(ctx context.Context, questionnaireID string) (*surveyconv.SurveyDefinition, error)
	SubmitSurveyResponse(ctx context.Context, questionnaireID string, request *requests.SubmitSurveyResponse) (*responses.SubmitSurveyResponse, error)
	ExportSurvey(ctx context.Context, questionnaireID string) (*responses.ExportSurvey, error)
}
