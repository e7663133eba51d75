package store

import (
	"context"
	"errors"

	"go-entrylevel-collector/internal/models"
)

// ErrNotFound is returned by FindByURL when no record exists for the url.
var ErrNotFound = errors.New("record not found")

// Store is url-keyed persistence for job records. The pipeline does a
// sequential read-then-write per key from a single caller; concurrent
// writers racing on the same url are out of scope.
type Store interface {
	FindByURL(ctx context.Context, url string) (*models.JobRecord, error)
	Create(ctx context.Context, record *models.JobRecord) error
	Close() error
}
