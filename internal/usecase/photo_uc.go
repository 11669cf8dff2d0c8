package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ceyhunemlak/listing-service/internal/entity"
	"github.com/ceyhunemlak/listing-service/internal/port/repository"
	"github.com/ceyhunemlak/listing-service/internal/port/storage"
	"go.uber.org/zap"
)

type PhotoUsecase struct {
	storage  storage.PhotoStorage
	photos   repository.PhotoRepository
	listings repository.ListingRepository
	logger   *zap.Logger
}

func NewPhotoUsecase(photoStorage storage.PhotoStorage, photos repository.PhotoRepository, listings repository.ListingRepository, logger *zap.Logger) *PhotoUsecase {
	return &PhotoUsecase{
		storage:  photoStorage,
		photos:   photos,
		listings: listings,
		logger:   logger,
	}
}

// UploadPhoto stores a new image blob under the listing's folder and
// appends it to the gallery. It becomes the cover only when the gallery
// was empty.
func (uc *PhotoUsecase) UploadPhoto(ctx context.Context, listingID, fileName string, data []byte) (*entity.Photo, error) {
	listing, err := uc.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.photos.ListByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list photos for %s: %w", listingID, err)
	}

	folder := FolderSlug(listing.Title)
	storageID, url, err := uc.storage.Upload(ctx, folder, fileName, data)
	if err != nil {
		uc.logger.Error("UploadPhoto: storage upload failed",
			zap.String("listing_id", listingID),
			zap.String("file_name", fileName),
			zap.Error(err))
		return nil, fmt.Errorf("upload photo for %s: %w", listingID, err)
	}

	photo := &entity.Photo{
		StorageID:  storageID,
		ListingID:  listingID,
		URL:        url,
		OrderIndex: len(existing),
		IsCover:    len(existing) == 0,
		CreatedAt:  time.Now(),
	}
	if err := uc.photos.Insert(ctx, photo); err != nil {
		// Roll the blob back best-effort so it does not orphan.
		if delErr := uc.storage.Delete(ctx, storageID); delErr != nil {
			uc.logger.Warn("UploadPhoto: failed to clean up blob after row insert failure",
				zap.String("storage_id", storageID),
				zap.Error(delErr))
		}
		return nil, fmt.Errorf("insert photo %s: %w", storageID, err)
	}
	return photo, nil
}
