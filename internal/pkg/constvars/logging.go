package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingOperationKey       = "operation"
	LoggingSuccessKey         = "success"
	LoggingQuestionnaireIDKey = "questionnaire_id"
)
