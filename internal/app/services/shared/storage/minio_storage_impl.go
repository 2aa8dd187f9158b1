package storage

import (
	"bytes"
	"context"

	"formgen-service/internal/app/contracts"
	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadJSON(ctx context.Context, bucketName, objectName string, payload interface{}) (int64, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	info, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return 0, exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return info.Size, nil
}
