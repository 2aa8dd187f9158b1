package surveys

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"formgen-service/internal/app/contracts"
	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/dto/requests"
	"formgen-service/internal/pkg/exceptions"
	"formgen-service/internal/pkg/fhir_dto"
	"formgen-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SurveyController struct {
	Log           *zap.Logger
	SurveyUsecase contracts.SurveyUsecase
}

func NewSurveyController(logger *zap.Logger, surveyUsecase contracts.SurveyUsecase) *SurveyController {
	return &SurveyController{
		Log:           logger,
		SurveyUsecase: surveyUsecase,
	}
}

func (ctrl *SurveyController) ConvertSurvey(w http.ResponseWriter, r *http.Request) {
	questionnaire := new(fhir_dto.Questionnaire)
	err := json.NewDecoder(r.Body).Decode(questionnaire)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request := &requests.ConvertSurvey{Questionnaire: questionnaire}
	if rawFlag := r.URL.Query().Get("has_expression_evaluator"); rawFlag != "" {
		hasEvaluator, err := strconv.ParseBool(rawFlag)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		request.HasExpressionEvaluator = &hasEvaluator
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	definition, err := ctrl.SurveyUsecase.ConvertSurvey(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConvertSurveySuccessMessage, definition)
}

func (ctrl *SurveyController) GetSurvey(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	definition, err := ctrl.SurveyUsecase.GetSurvey(ctx, questionnaireID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSurveySuccessMessage, definition)
}

func (ctrl *SurveyController) SubmitSurveyResponse(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	request := new(requests.SubmitSurveyResponse)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.SubmitSurveyResponse(ctx, questionnaireID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitSurveyResponseSuccessMessage, result)
}

func (ctrl *SurveyController) ExportSurvey(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.ExportSurvey(ctx, questionnaireID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportSurveySuccessMessage, result)
}
