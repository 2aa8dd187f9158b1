package constvars

const (
	ConvertSurveySuccessMessage        = "questionnaire converted successfully"
	GetSurveySuccessMessage            = "survey definition fetched successfully"
	SubmitSurveyResponseSuccessMessage = "survey responses submitted successfully"
	ExportSurveySuccessMessage         = "survey definition exported successfully"
)
