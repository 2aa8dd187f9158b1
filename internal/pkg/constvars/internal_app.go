package constvars

type contextKey string

const (
	ContextRequestIDKey         contextKey = "request_id"
	ContextIsClientRequestIDKey contextKey = "is_client_request_id"
	ContextAPIKeyAuthKey        contextKey = "api_key_auth"
)

const (
	URLParamQuestionnaireID = "questionnaire_id"
)

const (
	SurveyDefinitionCacheKeyFormat = "survey_definition:%s"
	SurveyExportObjectNameFormat   = "survey-%s-%s.json"
)
