package constvars

// Client-facing error messages
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact the administrator"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientQuestionnaireNotFound         = "The requested questionnaire could not be found"
	ErrClientInvalidQuestionnaireID        = "The questionnaire identifier is not valid"
	ErrClientQuestionnaireNotConvertible   = "The questionnaire cannot be converted to a survey"
	ErrClientSurveyResponseNotBuildable    = "The survey responses cannot be converted to a questionnaire response"
)

// Developer error messages
const (
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON        = "Failed to marshal data into JSON"
	ErrDevValidationFailed         = "Request payload validation failed"
	ErrDevBuildRequest             = "Failed to build outbound HTTP request"
	ErrDevSendRequest              = "Failed to send outbound HTTP request"
	ErrDevServerDeadlineExceeded   = "Server deadline exceeded while processing request"
	ErrDevInvalidAPIKey            = "Invalid API key supplied"
	ErrDevGetFHIRResourceFormat    = "Failed to fetch %s resource from FHIR server"
	ErrDevCreateFHIRResourceFormat = "Failed to create %s resource on FHIR server"
	ErrDevDecodeResponseFormat     = "Failed to decode %s response body"
	ErrDevRedisSet                 = "Failed to set value in Redis"
	ErrDevRedisGet                 = "Failed to get value from Redis"
	ErrDevRedisDelete              = "Failed to delete value from Redis"
	ErrDevMongoInsertDocument      = "Failed to insert document into MongoDB"
	ErrDevRabbitMQPublish          = "Failed to publish message to RabbitMQ"
	ErrDevMinioCreateObjectFormat  = "Failed to create object in bucket %s"
	ErrDevSurveyConversionFailed   = "Survey conversion failed"
	ErrDevSurveyResponseBuild      = "Failed to build QuestionnaireResponse from survey answers"
	ErrDevInvalidQuestionnaireID   = "Questionnaire ID failed FHIR id validation"
)

const (
	ResponseUnknown = "unknown"
)
