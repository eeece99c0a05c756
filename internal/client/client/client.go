package client

import (
	"context"

	"github.com/dmitrijs2005/mobiehub/internal/client/models"
)

// Client is the movie repository contract consumed by the screens.
type Client interface {
	ListAll(ctx context.Context) ([]models.Movie, error)
	ListByStatus(ctx context.Context, status models.Status) ([]models.Movie, error)
	ListByName(ctx context.Context, name string) ([]models.Movie, error)
	GetByID(ctx context.Context, id int) (*models.Movie, error)
	Create(ctx context.Context, m models.MovieRequest) (*models.Movie, error)
	Update(ctx context.Context, id int, m models.MovieRequest) (*models.Movie, error)
	Delete(ctx context.Context, id int) error
}
