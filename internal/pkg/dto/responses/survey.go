package responses

type SubmitSurveyResponse struct {
	QuestionnaireResponseID string `json:"questionnaire_response_id"`
	SubmissionID            string `json:"submission_id"`
	Status                  string `json:"status"`
}

type ExportSurvey struct {
	Bucket     string `json:"bucket"`
	ObjectName string `json:"object_name"`
	Size       int64  `json:"size"`
}
