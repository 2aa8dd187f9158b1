package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"formgen-service/internal/app/config"
	"formgen-service/internal/app/delivery/http/middlewares"
	"formgen-service/internal/app/services/core/surveys"
	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/dto/requests"
	"formgen-service/internal/pkg/dto/responses"
	"formgen-service/internal/pkg/exceptions"
	"formgen-service/internal/pkg/surveyconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSurveyUsecase struct {
	mock.Mock
}

func (m *mockSurveyUsecase) ConvertSurvey(ctx context.Context, request *requests.ConvertSurvey) (*surveyconv.SurveyDefinition, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*surveyconv.SurveyDefinition), args.Error(1)
}

func (m *mockSurveyUsecase) GetSurvey(ctx context.Context, questionnaireID string) (*surveyconv.SurveyDefinition, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*surveyconv.SurveyDefinition), args.Error(1)
}

func (m *mockSurveyUsecase) SubmitSurveyResponse(ctx context.Context, questionnaireID string, request *requests.SubmitSurveyResponse) (*responses.SubmitSurveyResponse, error) {
	args := m.Called(ctx, questionnaireID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SubmitSurveyResponse), args.Error(1)
}

func (m *mockSurveyUsecase) ExportSurvey(ctx context.Context, questionnaireID string) (*responses.ExportSurvey, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ExportSurvey), args.Error(1)
}

func newTestRouter(usecase *mockSurveyUsecase, apiKey string) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix: "api",
			Version:        "v1",
			MaxRequests:    100,
			APIKey:         apiKey,
		},
	}
	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		surveys.NewSurveyController(logger, usecase),
	)
	return router
}

func decodeResponseDTO(t *testing.T, recorder *httptest.ResponseRecorder) responses.ResponseDTO {
	t.Helper()
	var dto responses.ResponseDTO
	err := json.NewDecoder(recorder.Body).Decode(&dto)
	assert.NoError(t, err)
	return dto
}

func TestSurveyRoutes_Convert(t *testing.T) {
	t.Run("converts a posted questionnaire", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		usecase.On("ConvertSurvey", mock.Anything, mock.MatchedBy(func(req *requests.ConvertSurvey) bool {
			return req.Questionnaire.ID == "phq-9" && req.HasExpressionEvaluator == nil
		})).Return(&surveyconv.SurveyDefinition{CalculatedValues: []surveyconv.CalculatedValue{}}, nil)
		router := newTestRouter(usecase, "")

		body := `{"resourceType":"Questionnaire","id":"phq-9","status":"active"}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/convert", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		dto := decodeResponseDTO(t, recorder)
		assert.True(t, dto.Success)
		assert.Equal(t, constvars.ConvertSurveySuccessMessage, dto.Message)
	})

	t.Run("passes the evaluator flag from the query string", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		usecase.On("ConvertSurvey", mock.Anything, mock.MatchedBy(func(req *requests.ConvertSurvey) bool {
			return req.HasExpressionEvaluator != nil && *req.HasExpressionEvaluator
		})).Return(&surveyconv.SurveyDefinition{CalculatedValues: []surveyconv.CalculatedValue{}}, nil)
		router := newTestRouter(usecase, "")

		body := `{"resourceType":"Questionnaire","id":"phq-9","status":"active"}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/convert?has_expression_evaluator=true", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("rejects a body that is not JSON", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		router := newTestRouter(usecase, "")

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/convert", strings.NewReader("not json"))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		usecase.AssertNotCalled(t, "ConvertSurvey")
	})

	t.Run("surfaces conversion failures with their status code", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		conversionErr := exceptions.ErrSurveyConversion(surveyconv.ErrMissingEvaluator())
		usecase.On("ConvertSurvey", mock.Anything, mock.Anything).Return(nil, conversionErr)
		router := newTestRouter(usecase, "")

		body := `{"resourceType":"Questionnaire","id":"phq-9","status":"active"}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/convert", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestSurveyRoutes_Get(t *testing.T) {
	t.Run("fetches a survey definition by questionnaire id", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		usecase.On("GetSurvey", mock.Anything, "phq-9").Return(&surveyconv.SurveyDefinition{
			Pages:            []surveyconv.SurveyPage{{}},
			CalculatedValues: []surveyconv.CalculatedValue{},
		}, nil)
		router := newTestRouter(usecase, "")

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/surveys/phq-9", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		dto := decodeResponseDTO(t, recorder)
		assert.Equal(t, constvars.GetSurveySuccessMessage, dto.Message)
	})

	t.Run("returns not found for an unknown questionnaire", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		notFound := exceptions.ErrFHIRResourceNotFound(nil, constvars.ResourceQuestionnaire)
		usecase.On("GetSurvey", mock.Anything, "missing").Return(nil, notFound)
		router := newTestRouter(usecase, "")

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/surveys/missing", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestSurveyRoutes_Submit(t *testing.T) {
	t.Run("submits answers and returns created", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		usecase.On("SubmitSurveyResponse", mock.Anything, "phq-9", mock.MatchedBy(func(req *requests.SubmitSurveyResponse) bool {
			return len(req.Answers) == 1
		})).Return(&responses.SubmitSurveyResponse{
			QuestionnaireResponseID: "qr-1",
			SubmissionID:            "sub-1",
			Status:                  constvars.FhirQuestionnaireResponseStatusInProgress,
		}, nil)
		router := newTestRouter(usecase, "")

		body := `{"answers":{"1":true}}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/phq-9/responses", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		dto := decodeResponseDTO(t, recorder)
		assert.Equal(t, constvars.SubmitSurveyResponseSuccessMessage, dto.Message)
	})

	t.Run("rejects an empty answer set", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		router := newTestRouter(usecase, "")

		body := `{"answers":{}}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/phq-9/responses", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		usecase.AssertNotCalled(t, "SubmitSurveyResponse")
	})

	t.Run("requires the API key when one is configured", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		router := newTestRouter(usecase, "secret-key")

		body := `{"answers":{"1":true}}`
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/phq-9/responses", strings.NewReader(body))
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		usecase.AssertNotCalled(t, "SubmitSurveyResponse")
	})
}

func TestSurveyRoutes_Export(t *testing.T) {
	t.Run("exports a survey definition", func(t *testing.T) {
		usecase := new(mockSurveyUsecase)
		usecase.On("ExportSurvey", mock.Anything, "phq-9").Return(&responses.ExportSurvey{
			Bucket:     "survey-exports",
			ObjectName: "survey-phq-9-20260901_120000.json",
			Size:       256,
		}, nil)
		router := newTestRouter(usecase, "secret-key")

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/api/v1/surveys/phq-9/export", nil)
		request.Header.Set(constvars.HeaderXAPIKey, "secret-key")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		dto := decodeResponseDTO(t, recorder)
		assert.Equal(t, constvars.ExportSurveySuccessMessage, dto.Message)
	})
}
