package repository

import (
	"context"

	"github.com/ceyhunemlak/listing-service/internal/entity"
)

type AddressRepository interface {
	Upsert(ctx context.Context, address *entity.Address) error
	GetByListingID(ctx context.Context, listingID string) (*entity.Address, error)
	Delete(ctx context.Context, listingID string) error
}
