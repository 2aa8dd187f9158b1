package routers

import (
	"fmt"

	"formgen-service/internal/app/delivery/http/middlewares"
	"formgen-service/internal/app/services/core/surveys"
	"formgen-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSurveyRoutes(router chi.Router, middlewares *middlewares.Middlewares, surveyController *surveys.SurveyController) {
	questionnairePath := fmt.Sprintf("/{%s}", constvars.URLParamQuestionnaireID)

	router.Post("/convert", surveyController.ConvertSurvey)
	router.Get(questionnairePath, surveyController.GetSurvey)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.APIKeyAuth)
		r.Post(questionnairePath+"/responses", surveyController.SubmitSurveyResponse)
		r.Post(questionnairePath+"/export", surveyController.ExportSurvey)
	})
}
