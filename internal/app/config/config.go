package config

import (
	"formgen-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "formgen"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                             utils.GetEnvString("APP_ENV", "development"),
			Port:                            utils.GetEnvString("APP_PORT", ":8080"),
			Version:                         utils.GetEnvString("APP_VERSION", "v1"),
			Address:                         utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                        utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:                  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			APIKey:                          utils.GetEnvString("APP_API_KEY", ""),
			MaxRequests:                     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:        utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:       utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte:      utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SurveyCacheExpiredTimeInMinutes: utils.GetEnvInt("APP_SURVEY_CACHE_EXPIRED_TIME_IN_MINUTES", 30),
			RabbitMQSubmissionQueue:         utils.GetEnvString("APP_RABBITMQ_SUBMISSION_QUEUE", "survey-submissions"),
			ExpressionEvaluatorEnabled:      utils.GetEnvBool("SURVEY_EXPRESSION_EVALUATOR_ENABLED", false),
		},
		FHIR: AppFHIR{
			BaseUrl:          utils.GetEnvString("FHIR_BASE_URL", "http://localhost:5555/fhir"),
			TimeoutInSeconds: utils.GetEnvInt("FHIR_TIMEOUT_IN_SECONDS", 10),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "survey-exports"),
		},
	}
}
