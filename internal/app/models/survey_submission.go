package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveySubmission is the audit record persisted for every accepted
// submission, independent of the FHIR server's copy.
type SurveySubmission struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionnaireID         string             `bson:"questionnaire_id" json:"questionnaire_id"`
	QuestionnaireResponseID string             `bson:"questionnaire_response_id" json:"questionnaire_response_id"`
	RequestID               string             `bson:"request_id" json:"request_id"`
	Subject                 string             `bson:"subject,omitempty" json:"subject,omitempty"`
	AnswerCount             int                `bson:"answer_count" json:"answer_count"`
	SubmittedAt             time.Time          `bson:"submitted_at" json:"submitted_at"`
}

type SurveySubmissionEvent struct {
	EventType               string    `json:"event_type"`
	QuestionnaireID         string    `json:"questionnaire_id"`
	QuestionnaireResponseID string    `json:"questionnaire_response_id"`
	SubmissionID            string    `json:"submission_id"`
	SubmittedAt             time.Time `json:"submitted_at"`
}

const EventTypeSurveySubmitted = "survey.submitted"
