package surveys

import (
	"context"
	"fmt"
	"sync"

	"formgen-service/internal/app/contracts"
	"formgen-service/internal/app/models"
	"formgen-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const submissionCollectionName = "survey_submissions"

type submissionMongoRepository struct {
	Collection *mongo.Collection
}

var (
	submissionRepositoryInstance contracts.SubmissionRepository
	onceSubmissionRepository     sync.Once
)

func NewSubmissionMongoRepository(db *mongo.Database) contracts.SubmissionRepository {
	onceSubmissionRepository.Do(func() {
		submissionRepositoryInstance = &submissionMongoRepository{
			Collection: db.Collection(submissionCollectionName),
		}
	})
	return submissionRepositoryInstance
}

func (r *submissionMongoRepository) InsertSubmission(ctx context.Context, submission *models.SurveySubmission) (string, error) {
	result, err := r.Collection.InsertOne(ctx, submission)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}
	return objectID.Hex(), nil
}
