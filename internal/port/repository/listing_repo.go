package repository

import (
	"context"

	"github.com/ceyhunemlak/listing-service/internal/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	Update(ctx context.Context, listing *entity.Listing) error
	// UpdateFields applies a partial update (toggles, quick price/title
	// edits) without touching the rest of the document.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error)
}
