package surveys

import (
	"context"
	"fmt"
	"sync"
	"time"

	"formgen-service/internal/app/config"
	"formgen-service/internal/app/contracts"
	"formgen-service/internal/app/models"
	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/dto/requests"
	"formgen-service/internal/pkg/dto/responses"
	"formgen-service/internal/pkg/exceptions"
	"formgen-service/internal/pkg/fhir_dto"
	"formgen-service/internal/pkg/surveyconv"
	"formgen-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type surveyUsecase struct {
	QuestionnaireFhirClient         contracts.QuestionnaireFhirClient
	QuestionnaireResponseFhirClient contracts.QuestionnaireResponseFhirClient
	RedisRepository                 contracts.RedisRepository
	SubmissionRepository            contracts.SubmissionRepository
	EventPublisher                  contracts.EventPublisher
	Storage                         contracts.Storage
	InternalConfig                  *config.InternalConfig
	Log                             *zap.Logger
}

var (
	surveyUsecaseInstance contracts.SurveyUsecase
	onceSurveyUsecase     sync.Once
)

func NewSurveyUsecase(
	questionnaireFhirClient contracts.QuestionnaireFhirClient,
	questionnaireResponseFhirClient contracts.QuestionnaireResponseFhirClient,
	redisRepository contracts.RedisRepository,
	submissionRepository contracts.SubmissionRepository,
	eventPublisher contracts.EventPublisher,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SurveyUsecase {
	onceSurveyUsecase.Do(func() {
		surveyUsecaseInstance = &surveyUsecase{
			QuestionnaireFhirClient:         questionnaireFhirClient,
			QuestionnaireResponseFhirClient: questionnaireResponseFhirClient,
			RedisRepository:                 redisRepository,
			SubmissionRepository:            submissionRepository,
			EventPublisher:                  eventPublisher,
			Storage:                         storage,
			InternalConfig:                  internalConfig,
			Log:                             logger,
		}
	})
	return surveyUsecaseInstance
}

func (uc *surveyUsecase) ConvertSurvey(ctx context.Context, request *requests.ConvertSurvey) (*surveyconv.SurveyDefinition, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("surveyUsecase.ConvertSurvey called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	definition, err := surveyconv.ConvertQuestionnaire(request.Questionnaire)
	if err != nil {
		uc.Log.Error("surveyUsecase.ConvertSurvey conversion failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSurveyConversion(err)
	}

	evaluatorAvailable := uc.InternalConfig.App.ExpressionEvaluatorEnabled
	if request.HasExpressionEvaluator != nil {
		evaluatorAvailable = *request.HasExpressionEvaluator
	}
	if !evaluatorAvailable && surveyconv.NeedsExpressionEvaluator(definition) {
		uc.Log.Error("surveyUsecase.ConvertSurvey definition needs an evaluator none is available",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("calculated_value_count", len(definition.CalculatedValues)),
		)
		return nil, exceptions.ErrSurveyConversion(surveyconv.ErrMissingEvaluator())
	}

	uc.Log.Info("surveyUsecase.ConvertSurvey succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page_count", len(definition.Pages)),
		zap.Int("question_count", len(definition.Questions)),
	)
	return definition, nil
}

func (uc *surveyUsecase) GetSurvey(ctx context.Context, questionnaireID string) (*surveyconv.SurveyDefinition, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("surveyUsecase.GetSurvey called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	if !utils.ValidateFhirID(questionnaireID) {
		return nil, exceptions.ErrInvalidQuestionnaireID(fmt.Errorf("invalid questionnaire id: %s", questionnaireID))
	}

	cacheKey := fmt.Sprintf(constvars.SurveyDefinitionCacheKeyFormat, questionnaireID)
	cachedData, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("surveyUsecase.GetSurvey error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if cachedData != "" {
		definition := new(surveyconv.SurveyDefinition)
		err = json.Unmarshal([]byte(cachedData), definition)
		if err != nil {
			uc.Log.Error("surveyUsecase.GetSurvey error parsing cached definition",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		uc.Log.Info("surveyUsecase.GetSurvey cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		)
		return definition, nil
	}

	questionnaire, err := uc.QuestionnaireFhirClient.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		uc.Log.Error("surveyUsecase.GetSurvey error fetching questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, err
	}

	definition, err := surveyconv.ConvertQuestionnaire(questionnaire)
	if err != nil {
		uc.Log.Error("surveyUsecase.GetSurvey conversion failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSurveyConversion(err)
	}

	if !uc.InternalConfig.App.ExpressionEvaluatorEnabled && surveyconv.NeedsExpressionEvaluator(definition) {
		return nil, exceptions.ErrSurveyConversion(surveyconv.ErrMissingEvaluator())
	}

	cacheExpiry := time.Duration(uc.InternalConfig.App.SurveyCacheExpiredTimeInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, cacheKey, definition, cacheExpiry)
	if err != nil {
		uc.Log.Error("surveyUsecase.GetSurvey error caching definition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("surveyUsecase.GetSurvey succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)
	return definition, nil
}

func (uc *surveyUsecase) SubmitSurveyResponse(ctx context.Context, questionnaireID string, request *requests.SubmitSurveyResponse) (*responses.SubmitSurveyResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("surveyUsecase.SubmitSurveyResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Int("answer_count", len(request.Answers)),
	)

	if !utils.ValidateFhirID(questionnaireID) {
		return nil, exceptions.ErrInvalidQuestionnaireID(fmt.Errorf("invalid questionnaire id: %s", questionnaireID))
	}

	questionnaire, err := uc.QuestionnaireFhirClient.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		uc.Log.Error("surveyUsecase.SubmitSurveyResponse error fetching questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, err
	}

	questionnaireResponse, err := surveyconv.BuildQuestionnaireResponse(questionnaire, normalizeAnswers(request.Answers))
	if err != nil {
		uc.Log.Error("surveyUsecase.SubmitSurveyResponse error building questionnaire response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSurveyResponseBuild(err)
	}
	if request.Subject != "" {
		questionnaireResponse.Subject = &fhir_dto.Reference{Reference: request.Subject}
	}

	created, err := uc.QuestionnaireResponseFhirClient.CreateQuestionnaireResponse(ctx, questionnaireResponse)
	if err != nil {
		uc.Log.Error("surveyUsecase.SubmitSurveyResponse error creating questionnaire response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, err
	}

	submission := &models.SurveySubmission{
		QuestionnaireID:         questionnaireID,
		QuestionnaireResponseID: created.ID,
		RequestID:               requestID,
		Subject:                 request.Subject,
		AnswerCount:             len(questionnaireResponse.Item),
		SubmittedAt:             time.Now(),
	}
	submissionID, err := uc.SubmissionRepository.InsertSubmission(ctx, submission)
	if err != nil {
		uc.Log.Error("surveyUsecase.SubmitSurveyResponse error persisting submission audit record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, err
	}

	event := &models.SurveySubmissionEvent{
		EventType:               models.EventTypeSurveySubmitted,
		QuestionnaireID:         questionnaireID,
		QuestionnaireResponseID: created.ID,
		SubmissionID:            submissionID,
		SubmittedAt:             submission.SubmittedAt,
	}
	err = uc.EventPublisher.Publish(ctx, uc.InternalConfig.App.RabbitMQSubmissionQueue, event)
	if err != nil {
		// the submission is already accepted, the event is best effort
		uc.Log.Warn("surveyUsecase.SubmitSurveyResponse error publishing submission event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
	}

	uc.Log.Info("surveyUsecase.SubmitSurveyResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.String("questionnaire_response_id", created.ID),
	)
	return &responses.SubmitSurveyResponse{
		QuestionnaireResponseID: created.ID,
		SubmissionID:            submissionID,
		Status:                  created.Status,
	}, nil
}

func (uc *surveyUsecase) ExportSurvey(ctx context.Context, questionnaireID string) (*responses.ExportSurvey, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("surveyUsecase.ExportSurvey called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	definition, err := uc.GetSurvey(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateExportObjectName(questionnaireID)

	var size int64
	err = utils.LogOperation(uc.Log, "survey_export_upload", requestID, func() error {
		var uploadErr error
		size, uploadErr = uc.Storage.UploadJSON(ctx, bucketName, objectName, definition)
		return uploadErr
	})
	if err != nil {
		uc.Log.Error("surveyUsecase.ExportSurvey error uploading definition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("surveyUsecase.ExportSurvey succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.String("object_name", objectName),
	)
	return &responses.ExportSurvey{
		Bucket:     bucketName,
		ObjectName: objectName,
		Size:       size,
	}, nil
}

// normalizeAnswers turns every submitted value into a list so single and
// multi-valued questions flow through one code path.
func normalizeAnswers(answers map[string]interface{}) map[string][]interface{} {
	normalized := make(map[string][]interface{}, len(answers))
	for linkID, value := range answers {
		if values, ok := value.([]interface{}); ok {
			normalized[linkID] = values
			continue
		}
		normalized[linkID] = []interface{}{value}
	}
	return normalized
}
