package contracts

import (
	"context"

	"formgen-service/internal/app/models"
)

type SubmissionRepository interface {
	InsertSubmission(ctx context.Context, submission *models.SurveySubmission) (string, error)
}
