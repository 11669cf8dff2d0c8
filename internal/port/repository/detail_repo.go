package repository

import (
	"context"

	"github.com/ceyhunemlak/listing-service/internal/entity"
)

// DetailRepository persists the per-category detail record. Each
// property type has its own collection; Upsert dispatches on the
// concrete type of details.
type DetailRepository interface {
	Upsert(ctx context.Context, details entity.ListingDetails) error
	GetByListingID(ctx context.Context, propertyType entity.PropertyType, listingID string) (entity.ListingDetails, error)
	Delete(ctx context.Context, propertyType entity.PropertyType, listingID string) error
}
