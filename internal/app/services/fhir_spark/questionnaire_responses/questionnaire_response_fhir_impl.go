package questionnaire_responses

import (
	"bytes"
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

type questionnaireResponseFhirClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewQuestionnaireResponseFhirClient(baseUrl string, timeout time.Duration) contracts.QuestionnaireResponseFhirClient {
	return &questionnaireResponseFhirClient{
		BaseUrl:    fmt.Sprintf("%s/%s", baseUrl, constvars.ResourceQuestionnaireResponse),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *questionnaireResponseFhirClient) CreateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrCreateFHIRResource(err, constvars.ResourceQuestionnaireResponse)
		}

		var outcome fhir_dto.OperationOutcome
		err = json.Unmarshal(bodyBytes, &outcome)
		if err != nil {
			return nil, exceptions.ErrCreateFHIRResource(err, constvars.ResourceQuestionnaireResponse)
		}

		if len(outcome.Issue) > 0 {
			fhirErrorIssue := fmt.Errorf("%s", outcome.Issue[0].Diagnostics)
			return nil, exceptions.ErrCreateFHIRResource(fhirErrorIssue, constvars.ResourceQuestionnaireResponse)
		}
		return nil, exceptions.ErrCreateFHIRResource(fmt.Errorf("unexpected status code %d", resp.StatusCode), constvars.ResourceQuestionnaireResponse)
	}

	var created fhir_dto.QuestionnaireResponse
	err = json.NewDecoder(resp.Body).Decode(&created)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionnaireResponse)
	}

	return &created, nil
}
