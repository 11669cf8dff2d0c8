package repository

import (
	"context"

	"github.com/ceyhunemlak/listing-service/internal/entity"
)

type PhotoRepository interface {
	Insert(ctx context.Context, photo *entity.Photo) error
	DeleteByStorageID(ctx context.Context, storageID string) error
	DeleteByListingID(ctx context.Context, listingID string) error
	// ListByListingID returns the listing's photos ordered by order index.
	ListByListingID(ctx context.Context, listingID string) ([]entity.Photo, error)
	UpdateOrder(ctx context.Context, storageID string, orderIndex int, isCover bool) error
	// UpdateStorageID rewrites the storage id and URL of a photo row after
	// a remote folder rename moved the blob.
	UpdateStorageID(ctx context.Context, oldID, newID, newURL string) error
}
