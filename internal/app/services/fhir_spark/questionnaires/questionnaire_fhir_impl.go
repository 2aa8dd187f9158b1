package questionnaires

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"formgen-service/internal/app/contracts"
	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/exceptions"
	"formgen-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

type questionnaireFhirClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewQuestionnaireFhirClient(baseUrl string, timeout time.Duration) contracts.QuestionnaireFhirClient {
	return &questionnaireFhirClient{
		BaseUrl:    fmt.Sprintf("%s/%s", baseUrl, constvars.ResourceQuestionnaire),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *questionnaireFhirClient) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, questionnaireID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound || resp.StatusCode == constvars.StatusGone {
		return nil, exceptions.ErrFHIRResourceNotFound(fmt.Errorf("questionnaire %s not found", questionnaireID), constvars.ResourceQuestionnaire)
	}
	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrGetFHIRResource(err, constvars.ResourceQuestionnaire)
		}

		var outcome fhir_dto.OperationOutcome
		err = json.Unmarshal(bodyBytes, &outcome)
		if err != nil {
			return nil, exceptions.ErrGetFHIRResource(err, constvars.ResourceQuestionnaire)
		}

		if len(outcome.Issue) > 0 {
			fhirErrorIssue := fmt.Errorf("%s", outcome.Issue[0].Diagnostics)
			return nil, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourceQuestionnaire)
		}
		return nil, exceptions.ErrGetFHIRResource(fmt.Errorf("unexpected status code %d", resp.StatusCode), constvars.ResourceQuestionnaire)
	}

	var questionnaire fhir_dto.Questionnaire
	err = json.NewDecoder(resp.Body).Decode(&questionnaire)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionnaire)
	}

	return &questionnaire, nil
}
