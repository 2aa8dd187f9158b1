package config

type InternalConfig struct {
	App   App
	FHIR  AppFHIR
	Minio AppMinio
}

type App struct {
	Env                             string
	Port                            string
	Version                         string
	Address                         string
	Timezone                        string
	EndpointPrefix                  string
	APIKey                          string
	MaxRequests                     int
	ShutdownTimeoutInSeconds        int
	MaxTimeRequestsPerSeconds       int
	RequestBodyLimitInMegabyte      int
	SurveyCacheExpiredTimeInMinutes int
	RabbitMQSubmissionQueue         string
	// ExpressionEvaluatorEnabled states whether the rendering frontend has an
	// expression evaluator wired in. Conversions that reference calculated
	// values are rejected when it is off, unless the request says otherwise.
	ExpressionEvaluatorEnabled bool
}

type AppFHIR struct {
	BaseUrl          string
	TimeoutInSeconds int
}

type AppMinio struct {
	BucketName string
}
