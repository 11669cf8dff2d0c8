package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ceyhunemlak/listing-service/internal/entity"
	"github.com/ceyhunemlak/listing-service/internal/port/cache"
	"github.com/ceyhunemlak/listing-service/internal/port/repository"
	"github.com/ceyhunemlak/listing-service/internal/port/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const msgRequiredFields = "Lütfen zorunlu alanları doldurun"

type EventPublisher interface {
	PublishListingCreated(ctx context.Context, listing *entity.Listing) error
	PublishListingUpdated(ctx context.Context, listing *entity.Listing) error
	PublishListingDeleted(ctx context.Context, listingID string) error
}

type ListingUsecase struct {
	listings  repository.ListingRepository
	details   repository.DetailRepository
	photos    repository.PhotoRepository
	addresses repository.AddressRepository
	storage   storage.PhotoStorage
	cacheRepo cache.CacheRepository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewListingUsecase(
	listings repository.ListingRepository,
	details repository.DetailRepository,
	photos repository.PhotoRepository,
	addresses repository.AddressRepository,
	photoStorage storage.PhotoStorage,
	cacheRepo cache.CacheRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *ListingUsecase {
	return &ListingUsecase{
		listings:  listings,
		details:   details,
		photos:    photos,
		addresses: addresses,
		storage:   photoStorage,
		cacheRepo: cacheRepo,
		publisher: publisher,
		logger:    logger,
	}
}

func listingCacheKey(id string) string {
	return fmt.Sprintf("listing:%s", id)
}

const listingCacheTTL = 5 * time.Minute

type FolderRename struct {
	OldPath string
	NewPath string
}

type AddressInput struct {
	Province     string
	District     string
	Neighborhood string
	FullAddress  string
}

type UpdateListingInput struct {
	ID             string
	Title          string
	Description    string
	Price          float64
	PropertyType   entity.PropertyType
	Status         entity.ListingStatus
	IsActive       bool
	IsFeatured     bool
	Details        RawFields
	Photos         []IncomingPhoto
	PhotosToDelete []string
	FolderRename   *FolderRename
	Address        *AddressInput
}

type CreateListingInput struct {
	ID           string
	Title        string
	Description  string
	Price        float64
	PropertyType entity.PropertyType
	Status       entity.ListingStatus
	IsActive     bool
	IsFeatured   bool
	Details      RawFields
	Photos       []IncomingPhoto
	Address      *AddressInput
	// TempFolder is the temporary-id folder the wizard uploaded into
	// before the listing had a title. When set, the photos are moved to
	// the title-derived folder on finalize.
	TempFolder string
}

// ListingView is the composite consumed by the admin panel's edit form
// and the public detail page.
type ListingView struct {
	Listing entity.Listing
	Details entity.ListingDetails
	Address *entity.Address
	Photos  []entity.Photo
}

func validateCore(id, title, description string, price float64, propertyType entity.PropertyType) error {
	if id == "" || title == "" || description == "" || price <= 0 || !propertyType.Valid() {
		return entity.NewValidationError(msgRequiredFields)
	}
	return nil
}

// UpdateListing reconciles a resubmitted listing payload against the
// datastore and the remote blob store. The pipeline is linear; datastore
// failures abort, storage failures are logged and absorbed. Storage and
// datastore are not jointly transactional: the contract is best-effort
// forward progress, not atomicity.
func (uc *ListingUsecase) UpdateListing(ctx context.Context, input UpdateListingInput) error {
	if err := validateCore(input.ID, input.Title, input.Description, input.Price, input.PropertyType); err != nil {
		return err
	}

	log := uc.logger.With(zap.String("listing_id", input.ID))
	log.Info("UpdateListing: starting update pipeline")

	// Folder rename must land before the photo snapshot is read: renaming
	// changes storage ids, and the incoming payload still carries the old
	// ones.
	moved := uc.applyFolderRename(ctx, log, input.FolderRename)
	if len(moved) > 0 {
		remap := make(map[string]storage.MovedResource, len(moved))
		for _, m := range moved {
			remap[m.OldID] = m
		}
		for i, p := range input.Photos {
			if m, ok := remap[p.StorageID]; ok {
				input.Photos[i].StorageID = m.NewID
				input.Photos[i].URL = m.NewURL
			}
		}
		for i, id := range input.PhotosToDelete {
			if m, ok := remap[id]; ok {
				input.PhotosToDelete[i] = m.NewID
			}
		}
	}

	// Explicit deletions: the datastore row goes first so a listing is
	// never shown with a photo whose blob is scheduled for removal.
	// Storage cleanup after it is best-effort.
	for _, storageID := range input.PhotosToDelete {
		err := uc.photos.DeleteByStorageID(ctx, storageID)
		if errors.Is(err, entity.ErrPhotoNotFound) {
			// stale client state, the row is already gone
			continue
		}
		if err != nil {
			log.Error("UpdateListing: failed to delete photo row", zap.String("storage_id", storageID), zap.Error(err))
			return fmt.Errorf("delete photo %s: %w", storageID, err)
		}
		uc.deleteBlob(ctx, log, storageID)
	}

	now := time.Now()
	listing := &entity.Listing{
		ID:           input.ID,
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		PropertyType: input.PropertyType,
		Status:       normalizeStatus(input.PropertyType, input.Status),
		IsActive:     input.IsActive,
		IsFeatured:   input.IsFeatured,
		UpdatedAt:    now,
	}
	if err := uc.listings.Update(ctx, listing); err != nil {
		log.Error("UpdateListing: failed to update listing", zap.Error(err))
		return fmt.Errorf("update listing %s: %w", input.ID, err)
	}

	// Category details are validated before any detail write; a rejected
	// payload never leaves a partial detail row.
	details, err := MapDetails(input.ID, input.PropertyType, input.Details)
	if err != nil {
		log.Warn("UpdateListing: category details rejected", zap.Error(err))
		return err
	}
	if err := uc.details.Upsert(ctx, details); err != nil {
		log.Error("UpdateListing: failed to upsert details", zap.Error(err))
		return fmt.Errorf("upsert %s details for %s: %w", input.PropertyType, input.ID, err)
	}

	if input.Address != nil && input.PropertyType != entity.PropertyVasita {
		addr := &entity.Address{
			ListingID:    input.ID,
			Province:     input.Address.Province,
			District:     input.Address.District,
			Neighborhood: input.Address.Neighborhood,
			FullAddress:  input.Address.FullAddress,
		}
		if err := uc.addresses.Upsert(ctx, addr); err != nil {
			log.Error("UpdateListing: failed to upsert address", zap.Error(err))
			return fmt.Errorf("upsert address for %s: %w", input.ID, err)
		}
	}

	if err := uc.reconcilePhotos(ctx, log, input.ID, input.Photos); err != nil {
		return err
	}

	uc.invalidate(ctx, log, input.ID)
	if uc.publisher != nil {
		if err := uc.publisher.PublishListingUpdated(ctx, listing); err != nil {
			log.Warn("UpdateListing: failed to publish listing.updated", zap.Error(err))
		}
	}
	log.Info("UpdateListing: pipeline finished")
	return nil
}

// reconcilePhotos diffs the incoming sequence against an explicitly read
// snapshot of the current rows, purges orphans, inserts the new rows and
// applies the changed order/cover updates.
func (uc *ListingUsecase) reconcilePhotos(ctx context.Context, log *zap.Logger, listingID string, incoming []IncomingPhoto) error {
	snapshot, err := uc.photos.ListByListingID(ctx, listingID)
	if err != nil {
		log.Error("UpdateListing: failed to read photo snapshot", zap.Error(err))
		return fmt.Errorf("list photos for %s: %w", listingID, err)
	}

	diff := DiffPhotos(listingID, snapshot, incoming, nil)
	for _, id := range diff.Implicit {
		log.Warn("UpdateListing: photo missing from resubmitted sequence, deleting", zap.String("storage_id", id))
	}
	for _, storageID := range diff.ToDelete {
		if err := uc.photos.DeleteByStorageID(ctx, storageID); err != nil {
			log.Error("UpdateListing: failed to delete orphaned photo row", zap.String("storage_id", storageID), zap.Error(err))
			return fmt.Errorf("delete photo %s: %w", storageID, err)
		}
		uc.deleteBlob(ctx, log, storageID)
	}
	for i := range diff.ToInsert {
		if err := uc.photos.Insert(ctx, &diff.ToInsert[i]); err != nil {
			log.Error("UpdateListing: failed to insert photo row", zap.String("storage_id", diff.ToInsert[i].StorageID), zap.Error(err))
			return fmt.Errorf("insert photo %s: %w", diff.ToInsert[i].StorageID, err)
		}
	}
	for _, upd := range diff.Updates {
		if err := uc.photos.UpdateOrder(ctx, upd.StorageID, upd.OrderIndex, upd.IsCover); err != nil {
			log.Error("UpdateListing: failed to update photo order", zap.String("storage_id", upd.StorageID), zap.Error(err))
			return fmt.Errorf("update photo order %s: %w", upd.StorageID, err)
		}
	}
	return nil
}

// applyFolderRename performs the remote rename and propagates the id
// rewrites into the datastore. Every failure here is logged and absorbed:
// images keeping their old paths is a degraded but recoverable state.
func (uc *ListingUsecase) applyFolderRename(ctx context.Context, log *zap.Logger, rename *FolderRename) []storage.MovedResource {
	if rename == nil || rename.OldPath == "" || rename.NewPath == "" || rename.OldPath == rename.NewPath {
		return nil
	}
	moved, err := uc.storage.RenameFolder(ctx, rename.OldPath, rename.NewPath)
	if err != nil {
		log.Warn("folder rename failed, keeping old paths",
			zap.String("old_path", rename.OldPath),
			zap.String("new_path", rename.NewPath),
			zap.Error(err))
		return nil
	}
	for _, m := range moved {
		if err := uc.photos.UpdateStorageID(ctx, m.OldID, m.NewID, m.NewURL); err != nil {
			log.Warn("failed to propagate renamed storage id",
				zap.String("old_id", m.OldID),
				zap.String("new_id", m.NewID),
				zap.Error(err))
		}
	}
	log.Info("folder renamed",
		zap.String("old_path", rename.OldPath),
		zap.String("new_path", rename.NewPath),
		zap.Int("moved", len(moved)))
	return moved
}

// deleteBlob removes a blob best-effort: primary path first, then the
// administrative fallback. Both failing leaks the blob rather than
// blocking the user-visible operation.
func (uc *ListingUsecase) deleteBlob(ctx context.Context, log *zap.Logger, storageID string) {
	err := uc.storage.Delete(ctx, storageID)
	if err == nil {
		return
	}
	log.Warn("primary storage delete failed, trying admin path", zap.String("storage_id", storageID), zap.Error(err))
	if err := uc.storage.DeleteAdmin(ctx, storageID); err != nil {
		log.Error("storage delete failed on both paths, blob leaked", zap.String("storage_id", storageID), zap.Error(err))
	}
}

func normalizeStatus(propertyType entity.PropertyType, status entity.ListingStatus) entity.ListingStatus {
	// Vehicles are always for sale.
	if propertyType == entity.PropertyVasita {
		return entity.StatusSatilik
	}
	if status == "" {
		return entity.StatusSatilik
	}
	return status
}

// CreateListing persists a wizard submission. Details are validated
// before anything is written. The wizard may pre-generate the id so
// uploads can start before the first save.
func (uc *ListingUsecase) CreateListing(ctx context.Context, input CreateListingInput) (*entity.Listing, error) {
	if input.ID == "" {
		input.ID = uuid.New().String()
	}
	if err := validateCore(input.ID, input.Title, input.Description, input.Price, input.PropertyType); err != nil {
		return nil, err
	}
	details, err := MapDetails(input.ID, input.PropertyType, input.Details)
	if err != nil {
		return nil, err
	}

	log := uc.logger.With(zap.String("listing_id", input.ID))
	log.Info("CreateListing: creating listing", zap.String("property_type", string(input.PropertyType)))

	// Finalize-rename: move uploads out of the temporary-id folder into
	// the title-derived one. Best-effort, same as on update.
	if input.TempFolder != "" {
		rename := &FolderRename{OldPath: input.TempFolder, NewPath: FolderSlug(input.Title)}
		moved := uc.applyFolderRenameToIncoming(ctx, log, rename, input.Photos)
		if moved != nil {
			input.Photos = moved
		}
	}

	now := time.Now()
	listing := &entity.Listing{
		ID:           input.ID,
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		PropertyType: input.PropertyType,
		Status:       normalizeStatus(input.PropertyType, input.Status),
		IsActive:     input.IsActive,
		IsFeatured:   input.IsFeatured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.listings.Create(ctx, listing); err != nil {
		log.Error("CreateListing: failed to create listing", zap.Error(err))
		return nil, fmt.Errorf("create listing %s: %w", input.ID, err)
	}
	if err := uc.details.Upsert(ctx, details); err != nil {
		log.Error("CreateListing: failed to write details", zap.Error(err))
		return nil, fmt.Errorf("write %s details for %s: %w", input.PropertyType, input.ID, err)
	}
	if input.Address != nil && input.PropertyType != entity.PropertyVasita {
		addr := &entity.Address{
			ListingID:    input.ID,
			Province:     input.Address.Province,
			District:     input.Address.District,
			Neighborhood: input.Address.Neighborhood,
			FullAddress:  input.Address.FullAddress,
		}
		if err := uc.addresses.Upsert(ctx, addr); err != nil {
			log.Error("CreateListing: failed to write address", zap.Error(err))
			return nil, fmt.Errorf("write address for %s: %w", input.ID, err)
		}
	}

	for i, p := range input.Photos {
		photo := entity.Photo{
			StorageID:  p.StorageID,
			ListingID:  input.ID,
			URL:        p.URL,
			OrderIndex: i,
			IsCover:    i == 0,
			CreatedAt:  now,
		}
		if err := uc.photos.Insert(ctx, &photo); err != nil {
			log.Error("CreateListing: failed to insert photo row", zap.String("storage_id", p.StorageID), zap.Error(err))
			return nil, fmt.Errorf("insert photo %s: %w", p.StorageID, err)
		}
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishListingCreated(ctx, listing); err != nil {
			log.Warn("CreateListing: failed to publish listing.created", zap.Error(err))
		}
	}
	return listing, nil
}

// applyFolderRenameToIncoming is the create-flow variant: there are no
// photo rows to rewrite yet, only the incoming payload ids.
func (uc *ListingUsecase) applyFolderRenameToIncoming(ctx context.Context, log *zap.Logger, rename *FolderRename, photos []IncomingPhoto) []IncomingPhoto {
	if rename.OldPath == rename.NewPath || rename.NewPath == "" {
		return nil
	}
	moved, err := uc.storage.RenameFolder(ctx, rename.OldPath, rename.NewPath)
	if err != nil {
		log.Warn("finalize rename failed, keeping temp folder",
			zap.String("old_path", rename.OldPath),
			zap.String("new_path", rename.NewPath),
			zap.Error(err))
		return nil
	}
	remap := make(map[string]storage.MovedResource, len(moved))
	for _, m := range moved {
		remap[m.OldID] = m
	}
	out := make([]IncomingPhoto, len(photos))
	copy(out, photos)
	for i, p := range out {
		if m, ok := remap[p.StorageID]; ok {
			out[i].StorageID = m.NewID
			out[i].URL = m.NewURL
		}
	}
	return out
}

// DeleteListing removes the listing with its detail row, address and
// photo rows, then cleans the blobs up best-effort.
func (uc *ListingUsecase) DeleteListing(ctx context.Context, id string) error {
	log := uc.logger.With(zap.String("listing_id", id))

	listing, err := uc.listings.GetByID(ctx, id)
	if err != nil {
		return err
	}

	snapshot, err := uc.photos.ListByListingID(ctx, id)
	if err != nil {
		log.Error("DeleteListing: failed to read photos", zap.Error(err))
		return fmt.Errorf("list photos for %s: %w", id, err)
	}

	if err := uc.photos.DeleteByListingID(ctx, id); err != nil {
		log.Error("DeleteListing: failed to delete photo rows", zap.Error(err))
		return fmt.Errorf("delete photos for %s: %w", id, err)
	}
	if err := uc.details.Delete(ctx, listing.PropertyType, id); err != nil && !errors.Is(err, entity.ErrDetailsNotFound) {
		log.Error("DeleteListing: failed to delete details", zap.Error(err))
		return fmt.Errorf("delete %s details for %s: %w", listing.PropertyType, id, err)
	}
	if listing.PropertyType != entity.PropertyVasita {
		if err := uc.addresses.Delete(ctx, id); err != nil && !errors.Is(err, entity.ErrAddressNotFound) {
			log.Error("DeleteListing: failed to delete address", zap.Error(err))
			return fmt.Errorf("delete address for %s: %w", id, err)
		}
	}
	if err := uc.listings.Delete(ctx, id); err != nil {
		log.Error("DeleteListing: failed to delete listing", zap.Error(err))
		return fmt.Errorf("delete listing %s: %w", id, err)
	}

	for _, p := range snapshot {
		uc.deleteBlob(ctx, log, p.StorageID)
	}

	uc.invalidate(ctx, log, id)
	if uc.publisher != nil {
		if err := uc.publisher.PublishListingDeleted(ctx, id); err != nil {
			log.Warn("DeleteListing: failed to publish listing.deleted", zap.Error(err))
		}
	}
	log.Info("DeleteListing: listing deleted", zap.Int("photos", len(snapshot)))
	return nil
}

// DuplicateListing copies a listing under a fresh id: core fields,
// detail record, address, and the blobs copied into the new listing's
// own folder so the galleries stay independent.
func (uc *ListingUsecase) DuplicateListing(ctx context.Context, id string) (*entity.Listing, error) {
	log := uc.logger.With(zap.String("listing_id", id))

	src, err := uc.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := uc.details.GetByListingID(ctx, src.PropertyType, id)
	if err != nil && !errors.Is(err, entity.ErrDetailsNotFound) {
		return nil, err
	}
	photos, err := uc.photos.ListByListingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list photos for %s: %w", id, err)
	}

	newID := uuid.New().String()
	now := time.Now()
	dup := *src
	dup.ID = newID
	dup.Title = src.Title + " (Kopya)"
	dup.IsActive = false
	dup.CreatedAt = now
	dup.UpdatedAt = now

	if err := uc.listings.Create(ctx, &dup); err != nil {
		log.Error("DuplicateListing: failed to create copy", zap.Error(err))
		return nil, fmt.Errorf("create duplicate of %s: %w", id, err)
	}
	if details != nil {
		if err := uc.details.Upsert(ctx, reownDetails(details, newID)); err != nil {
			log.Error("DuplicateListing: failed to copy details", zap.Error(err))
			return nil, fmt.Errorf("copy details of %s: %w", id, err)
		}
	}
	if src.PropertyType != entity.PropertyVasita {
		if addr, err := uc.addresses.GetByListingID(ctx, id); err == nil {
			addrCopy := *addr
			addrCopy.ListingID = newID
			if err := uc.addresses.Upsert(ctx, &addrCopy); err != nil {
				log.Error("DuplicateListing: failed to copy address", zap.Error(err))
				return nil, fmt.Errorf("copy address of %s: %w", id, err)
			}
		} else if !errors.Is(err, entity.ErrAddressNotFound) {
			return nil, err
		}
	}

	if len(photos) > 0 {
		oldFolder := FolderSlug(src.Title)
		newFolder := FolderSlug(dup.Title)
		moved, err := uc.storage.CopyFolder(ctx, oldFolder, newFolder)
		if err != nil {
			log.Warn("DuplicateListing: blob copy failed, duplicate has no gallery", zap.Error(err))
		} else {
			copied := make(map[string]storage.MovedResource, len(moved))
			for _, m := range moved {
				copied[m.OldID] = m
			}
			for _, p := range photos {
				m, ok := copied[p.StorageID]
				if !ok {
					continue
				}
				photo := entity.Photo{
					StorageID:  m.NewID,
					ListingID:  newID,
					URL:        m.NewURL,
					OrderIndex: p.OrderIndex,
					IsCover:    p.IsCover,
					CreatedAt:  now,
				}
				if err := uc.photos.Insert(ctx, &photo); err != nil {
					log.Error("DuplicateListing: failed to insert copied photo row", zap.String("storage_id", m.NewID), zap.Error(err))
					return nil, fmt.Errorf("insert photo %s: %w", m.NewID, err)
				}
			}
		}
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishListingCreated(ctx, &dup); err != nil {
			log.Warn("DuplicateListing: failed to publish listing.created", zap.Error(err))
		}
	}
	return &dup, nil
}

func reownDetails(details entity.ListingDetails, listingID string) entity.ListingDetails {
	switch d := details.(type) {
	case entity.KonutDetails:
		d.ListingID = listingID
		return d
	case entity.TicariDetails:
		d.ListingID = listingID
		return d
	case entity.ArsaDetails:
		d.ListingID = listingID
		return d
	case entity.VasitaDetails:
		d.ListingID = listingID
		return d
	}
	return details
}

func (uc *ListingUsecase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	key := listingCacheKey(id)
	if uc.cacheRepo != nil {
		if raw, err := uc.cacheRepo.Get(ctx, key); err == nil {
			var listing entity.Listing
			if err := json.Unmarshal(raw, &listing); err == nil {
				return &listing, nil
			}
			uc.logger.Warn("GetListing: dropping corrupt cache entry", zap.String("key", key))
		}
	}

	listing, err := uc.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if raw, err := json.Marshal(listing); err == nil {
			if err := uc.cacheRepo.Set(ctx, key, raw, listingCacheTTL); err != nil {
				uc.logger.Warn("GetListing: failed to cache listing", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return listing, nil
}

// GetListingView assembles the edit-form state: core fields, the typed
// detail record, address and the ordered gallery.
func (uc *ListingUsecase) GetListingView(ctx context.Context, id string) (*ListingView, error) {
	listing, err := uc.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &ListingView{Listing: *listing}

	details, err := uc.details.GetByListingID(ctx, listing.PropertyType, id)
	if err != nil && !errors.Is(err, entity.ErrDetailsNotFound) {
		return nil, err
	}
	view.Details = details

	if listing.PropertyType != entity.PropertyVasita {
		addr, err := uc.addresses.GetByListingID(ctx, id)
		if err != nil && !errors.Is(err, entity.ErrAddressNotFound) {
			return nil, err
		}
		view.Address = addr
	}

	photos, err := uc.photos.ListByListingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list photos for %s: %w", id, err)
	}
	view.Photos = photos
	return view, nil
}

func (uc *ListingUsecase) SearchListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	return uc.listings.List(ctx, filter)
}

func (uc *ListingUsecase) SetActive(ctx context.Context, id string, active bool) error {
	return uc.patch(ctx, id, map[string]interface{}{"is_active": active})
}

func (uc *ListingUsecase) SetFeatured(ctx context.Context, id string, featured bool) error {
	return uc.patch(ctx, id, map[string]interface{}{"is_featured": featured})
}

// QuickEdit updates title and/or price without running the full
// reconciliation pipeline.
func (uc *ListingUsecase) QuickEdit(ctx context.Context, id, title string, price float64) error {
	fields := map[string]interface{}{}
	if title != "" {
		fields["title"] = title
	}
	if price > 0 {
		fields["price"] = price
	}
	if len(fields) == 0 {
		return entity.NewValidationError(msgRequiredFields)
	}
	return uc.patch(ctx, id, fields)
}

func (uc *ListingUsecase) patch(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	if err := uc.listings.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	uc.invalidate(ctx, uc.logger.With(zap.String("listing_id", id)), id)
	return nil
}

func (uc *ListingUsecase) invalidate(ctx context.Context, log *zap.Logger, id string) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.Delete(ctx, listingCacheKey(id)); err != nil {
		log.Warn("failed to invalidate listing cache", zap.Error(err))
	}
}
