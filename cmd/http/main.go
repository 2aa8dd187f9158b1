package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formgen-service/internal/app/config"
	"formgen-service/internal/app/delivery/http/middlewares"
	"formgen-service/internal/app/delivery/http/routers"
	"formgen-service/internal/app/drivers/database"
	"formgen-service/internal/app/drivers/logger"
	"formgen-service/internal/app/drivers/messaging"
	"formgen-service/internal/app/drivers/storage"
	"formgen-service/internal/app/services/core/surveys"
	"formgen-service/internal/app/services/fhir_spark/questionnaire_responses"
	"formgen-service/internal/app/services/fhir_spark/questionnaires"
	"formgen-service/internal/app/services/shared/eventqueue"
	"formgen-service/internal/app/services/shared/redis"
	sharedstorage "formgen-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Address + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		bootstrapLog.Infof("Server listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Error closing connections: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	fhirTimeout := time.Duration(bootstrap.InternalConfig.FHIR.TimeoutInSeconds) * time.Second

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	eventPublisher := eventqueue.NewRabbitMQPublisher(bootstrap.RabbitMQ)

	// FHIR clients
	questionnaireFhirClient := questionnaires.NewQuestionnaireFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, fhirTimeout)
	questionnaireResponseFhirClient := questionnaire_responses.NewQuestionnaireResponseFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, fhirTimeout)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Surveys
	submissionRepository := surveys.NewSubmissionMongoRepository(bootstrap.MongoDB)
	surveyUsecase := surveys.NewSurveyUsecase(
		questionnaireFhirClient,
		questionnaireResponseFhirClient,
		redisRepository,
		submissionRepository,
		eventPublisher,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	surveyController := surveys.NewSurveyController(bootstrap.Logger, surveyUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, surveyController)
}
