package utils

import (
	"fmt"
	"time"

	"formgen-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateExportObjectName builds the storage object name for an exported
// survey definition. The timestamp keeps successive exports distinct.
func GenerateExportObjectName(questionnaireID string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf(constvars.SurveyExportObjectNameFormat, questionnaireID, timestamp)
}
