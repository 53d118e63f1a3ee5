package service

import (
	"github.com/photoshare/photoshare-backend/internal/models"
)

// Counter is the slice of each repository the diagnostics endpoint needs.
type Counter interface {
	Count() (int64, error)
}

type SchemaInfoStore interface {
	Get() (*models.SchemaInfo, error)
	Count() (int64, error)
}

// DiagService backs the /test connectivity endpoints.
type DiagService struct {
	schemaInfo SchemaInfoStore
	users      Counter
	photos     Counter
}

func NewDiagService(schemaInfo SchemaInfoStore, users Counter, photos Counter) *DiagService {
	return &DiagService{
		schemaInfo: schemaInfo,
		users:      users,
		photos:     photos,
	}
}

func (s *DiagService) Info() (*models.SchemaInfo, error) {
	return s.schemaInfo.Get()
}

func (s *DiagService) Counts() (models.CollectionCounts, error) {
	var counts models.CollectionCounts
	var err error

	if counts.User, err = s.users.Count(); err != nil {
		return counts, err
	}
	if counts.Photo, err = s.photos.Count(); err != nil {
		return counts, err
	}
	if counts.SchemaInfo, err = s.schemaInfo.Count(); err != nil {
		return counts, err
	}
	return counts, nil
}
