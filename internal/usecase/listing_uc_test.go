package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ceyhunemlak/listing-service/internal/entity"
	"github.com/ceyhunemlak/listing-service/internal/port/cache"
	"github.com/ceyhunemlak/listing-service/internal/port/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	if listing, ok := args.Get(0).(*entity.Listing); ok {
		return listing, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListingRepository) List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	args := m.Called(ctx, filter)
	listings, _ := args.Get(0).([]*entity.Listing)
	return listings, args.Get(1).(int64), args.Error(2)
}

type MockDetailRepository struct {
	mock.Mock
}

func (m *MockDetailRepository) Upsert(ctx context.Context, details entity.ListingDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockDetailRepository) GetByListingID(ctx context.Context, propertyType entity.PropertyType, listingID string) (entity.ListingDetails, error) {
	args := m.Called(ctx, propertyType, listingID)
	if details, ok := args.Get(0).(entity.ListingDetails); ok {
		return details, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDetailRepository) Delete(ctx context.Context, propertyType entity.PropertyType, listingID string) error {
	args := m.Called(ctx, propertyType, listingID)
	return args.Error(0)
}

type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) Insert(ctx context.Context, photo *entity.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) DeleteByStorageID(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}

func (m *MockPhotoRepository) DeleteByListingID(ctx context.Context, listingID string) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

func (m *MockPhotoRepository) ListByListingID(ctx context.Context, listingID string) ([]entity.Photo, error) {
	args := m.Called(ctx, listingID)
	photos, _ := args.Get(0).([]entity.Photo)
	return photos, args.Error(1)
}

func (m *MockPhotoRepository) UpdateOrder(ctx context.Context, storageID string, orderIndex int, isCover bool) error {
	args := m.Called(ctx, storageID, orderIndex, isCover)
	return args.Error(0)
}

func (m *MockPhotoRepository) UpdateStorageID(ctx context.Context, oldID, newID, newURL string) error {
	args := m.Called(ctx, oldID, newID, newURL)
	return args.Error(0)
}

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Upsert(ctx context.Context, address *entity.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) GetByListingID(ctx context.Context, listingID string) (*entity.Address, error) {
	args := m.Called(ctx, listingID)
	if addr, ok := args.Get(0).(*entity.Address); ok {
		return addr, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAddressRepository) Delete(ctx context.Context, listingID string) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Upload(ctx context.Context, folder, fileName string, data []byte) (string, string, error) {
	args := m.Called(ctx, folder, fileName, data)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockPhotoStorage) Delete(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}

func (m *MockPhotoStorage) DeleteAdmin(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}

func (m *MockPhotoStorage) RenameFolder(ctx context.Context, oldPrefix, newPrefix string) ([]storage.MovedResource, error) {
	args := m.Called(ctx, oldPrefix, newPrefix)
	moved, _ := args.Get(0).([]storage.MovedResource)
	return moved, args.Error(1)
}

func (m *MockPhotoStorage) CopyFolder(ctx context.Context, oldPrefix, newPrefix string) ([]storage.MovedResource, error) {
	args := m.Called(ctx, oldPrefix, newPrefix)
	moved, _ := args.Get(0).([]storage.MovedResource)
	return moved, args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishListingCreated(ctx context.Context, listing *entity.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishListingUpdated(ctx context.Context, listing *entity.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishListingDeleted(ctx context.Context, listingID string) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

type listingUsecaseMocks struct {
	listings  *MockListingRepository
	details   *MockDetailRepository
	photos    *MockPhotoRepository
	addresses *MockAddressRepository
	storage   *MockPhotoStorage
	cache     *MockCacheRepository
	publisher *MockEventPublisher
}

func newTestListingUsecase() (*ListingUsecase, *listingUsecaseMocks) {
	m := &listingUsecaseMocks{
		listings:  new(MockListingRepository),
		details:   new(MockDetailRepository),
		photos:    new(MockPhotoRepository),
		addresses: new(MockAddressRepository),
		storage:   new(MockPhotoStorage),
		cache:     new(MockCacheRepository),
		publisher: new(MockEventPublisher),
	}
	uc := NewListingUsecase(m.listings, m.details, m.photos, m.addresses, m.storage, m.cache, m.publisher, zap.NewNop())
	return uc, m
}

func validKonutUpdateInput() UpdateListingInput {
	return UpdateListingInput{
		ID:           "l-1",
		Title:        "Merkezde Satılık Daire",
		Description:  "Geniş ve ferah",
		Price:        2500000,
		PropertyType: entity.PropertyKonut,
		Status:       entity.StatusSatilik,
		IsActive:     true,
		Details: RawFields{
			"konut_type":   "daire",
			"gross_sqm":    145.0,
			"room_count":   "3+1",
			"building_age": 8.0,
			"floor":        3.0,
			"total_floors": 7.0,
			"heating":      "dogalgaz",
		},
	}
}

// expectHappyTail wires the pipeline steps after the listing write for an
// update with no photo changes.
func expectHappyTail(m *listingUsecaseMocks, listingID string) {
	m.details.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	m.photos.On("ListByListingID", mock.Anything, listingID).Return(nil, nil)
	m.cache.On("Delete", mock.Anything, "listing:"+listingID).Return(nil)
	m.publisher.On("PublishListingUpdated", mock.Anything, mock.Anything).Return(nil)
}

func TestUpdateListing_CoreValidationAbortsBeforeAnyWrite(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.Title = ""

	err := uc.UpdateListing(context.Background(), input)
	require.Error(t, err)
	assert.True(t, entity.IsValidation(err))
	assert.Equal(t, "Lütfen zorunlu alanları doldurun", err.Error())

	m.listings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.photos.AssertNotCalled(t, "DeleteByStorageID", mock.Anything, mock.Anything)
}

func TestUpdateListing_VehicleWithoutFuelTypeLeavesDetailsUntouched(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.PropertyType = entity.PropertyVasita
	input.Details = RawFields{"brand": "Ford", "model": "Focus", "km": 120000.0}

	m.listings.On("Update", mock.Anything, mock.Anything).Return(nil)

	err := uc.UpdateListing(context.Background(), input)
	require.Error(t, err)
	assert.True(t, entity.IsValidation(err))
	assert.Equal(t, "Lütfen yakıt tipini seçin", err.Error())

	m.details.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	m.photos.AssertNotCalled(t, "ListByListingID", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "PublishListingUpdated", mock.Anything, mock.Anything)
}

func TestUpdateListing_HappyPathWithAddress(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.Address = &AddressInput{
		Province:     "Yalova",
		District:     "Merkez",
		Neighborhood: "Bahçelievler",
		FullAddress:  "Bahçelievler Mah. No:12",
	}

	m.listings.On("Update", mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.ID == "l-1" && l.Status == entity.StatusSatilik && l.IsActive
	})).Return(nil)
	m.addresses.On("Upsert", mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.ListingID == "l-1" && a.Province == "Yalova"
	})).Return(nil)
	expectHappyTail(m, "l-1")

	err := uc.UpdateListing(context.Background(), input)
	require.NoError(t, err)

	m.listings.AssertExpectations(t)
	m.addresses.AssertExpectations(t)
	m.details.AssertExpectations(t)
	m.cache.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestUpdateListing_VehicleNeverWritesAddress(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.PropertyType = entity.PropertyVasita
	input.Status = entity.StatusKiralik
	input.Details = RawFields{"brand": "Ford", "fuel_type": "dizel"}
	input.Address = &AddressInput{Province: "Yalova"}

	m.listings.On("Update", mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
		// vehicles are always for sale, whatever the payload says
		return l.Status == entity.StatusSatilik
	})).Return(nil)
	expectHappyTail(m, "l-1")

	err := uc.UpdateListing(context.Background(), input)
	require.NoError(t, err)

	m.addresses.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpdateListing_RenameFailureIsAbsorbed(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.FolderRename = &FolderRename{OldPath: "eski-baslik", NewPath: "yeni-baslik"}

	m.storage.On("RenameFolder", mock.Anything, "eski-baslik", "yeni-baslik").
		Return(nil, errors.New("connection reset"))
	m.listings.On("Update", mock.Anything, mock.Anything).Return(nil)
	expectHappyTail(m, "l-1")

	err := uc.UpdateListing(context.Background(), input)
	require.NoError(t, err)

	m.photos.AssertNotCalled(t, "UpdateStorageID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateListing_RenameRemapsIncomingIDs(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.FolderRename = &FolderRename{OldPath: "eski-baslik", NewPath: "yeni-baslik"}
	input.Photos = []IncomingPhoto{
		{StorageID: "eski-baslik/a.jpg", URL: "https://cdn/eski-baslik/a.jpg", IsExisting: true},
	}

	moved := []storage.MovedResource{
		{OldID: "eski-baslik/a.jpg", NewID: "yeni-baslik/a.jpg", NewURL: "https://cdn/yeni-baslik/a.jpg"},
	}
	m.storage.On("RenameFolder", mock.Anything, "eski-baslik", "yeni-baslik").Return(moved, nil)
	m.photos.On("UpdateStorageID", mock.Anything, "eski-baslik/a.jpg", "yeni-baslik/a.jpg", "https://cdn/yeni-baslik/a.jpg").Return(nil)

	m.listings.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.details.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	// snapshot already carries the renamed id, so the resubmitted photo
	// matches and nothing is purged
	m.photos.On("ListByListingID", mock.Anything, "l-1").Return([]entity.Photo{
		{StorageID: "yeni-baslik/a.jpg", ListingID: "l-1", OrderIndex: 0, IsCover: true},
	}, nil)
	m.cache.On("Delete", mock.Anything, "listing:l-1").Return(nil)
	m.publisher.On("PublishListingUpdated", mock.Anything, mock.Anything).Return(nil)

	err := uc.UpdateListing(context.Background(), input)
	require.NoError(t, err)

	m.photos.AssertNotCalled(t, "DeleteByStorageID", mock.Anything, mock.Anything)
	m.photos.AssertExpectations(t)
}

func TestUpdateListing_ExplicitDeleteFallsBackToAdminPath(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.PhotosToDelete = []string{"folder/gone.jpg"}

	m.photos.On("DeleteByStorageID", mock.Anything, "folder/gone.jpg").Return(nil)
	m.storage.On("Delete", mock.Anything, "folder/gone.jpg").Return(errors.New("access denied"))
	m.storage.On("DeleteAdmin", mock.Anything, "folder/gone.jpg").Return(nil)
	m.listings.On("Update", mock.Anything, mock.Anything).Return(nil)
	expectHappyTail(m, "l-1")

	err := uc.UpdateListing(context.Background(), input)
	require.NoError(t, err)

	m.storage.AssertExpectations(t)
}

func TestUpdateListing_BothStorageDeletePathsFailingStillSucceeds(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.PhotosToDelete = []string{"folder/gone.jpg"}

	m.photos.On("DeleteByStorageID", mock.Anything, "folder/gone.jpg").Return(nil)
	m.storage.On("Delete", mock.Anything, "folder/gone.jpg").Return(errors.New("access denied"))
	m.storage.On("DeleteAdmin", mock.Anything, "folder/gone.jpg").Return(errors.New("access denied"))
	m.listings.On("Update", mock.Anything, mock.Anything).Return(nil)
	expectHappyTail(m, "l-1")

	err := uc.UpdateListing(context.Background(), input)
	assert.NoError(t, err)
}

func TestUpdateListing_PhotoRowDeleteFailureAborts(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.PhotosToDelete = []string{"folder/gone.jpg"}

	m.photos.On("DeleteByStorageID", mock.Anything, "folder/gone.jpg").Return(errors.New("write conflict"))

	err := uc.UpdateListing(context.Background(), input)
	require.Error(t, err)
	assert.False(t, entity.IsValidation(err))

	m.listings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateListing_ListingWriteFailureAborts(t *testing.T) {
	uc, m := newTestListingUsecase()

	m.listings.On("Update", mock.Anything, mock.Anything).Return(errors.New("write conflict"))

	err := uc.UpdateListing(context.Background(), validKonutUpdateInput())
	require.Error(t, err)

	m.details.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	m.cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateListing_PurgesPhotosMissingFromResubmission(t *testing.T) {
	uc, m := newTestListingUsecase()

	input := validKonutUpdateInput()
	input.Photos = []IncomingPhoto{
		{StorageID: "folder/a.jpg", IsExisting: true},
	}

	m.listings.On("Update", mock.Anything, mock.Anything).Return(nil)
	m.details.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	m.photos.On("ListByListingID", mock.Anything, "l-1").Return([]entity.Photo{
		{StorageID: "folder/a.jpg", ListingID: "l-1", OrderIndex: 0, IsCover: true},
		{StorageID: "folder/b.jpg", ListingID: "l-1", OrderIndex: 1},
	}, nil)
	m.photos.On("DeleteByStorageID", mock.Anything, "folder/b.jpg").Return(nil)
	m.storage.On("Delete", mock.Anything, "folder/b.jpg").Return(nil)
	m.cache.On("Delete", mock.Anything, "listing:l-1").Return(nil)
	m.publisher.On("PublishListingUpdated", mock.Anything, mock.Anything).Return(nil)

	err := uc.UpdateListing(context.Background(), input)
	require.NoError(t, err)

	// the surviving photo kept index 0 and the cover flag
	m.photos.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.photos.AssertExpectations(t)
}

func TestCreateListing_DetailValidationRunsBeforeAnyWrite(t *testing.T) {
	uc, m := newTestListingUsecase()

	_, err := uc.CreateListing(context.Background(), CreateListingInput{
		ID:           "l-9",
		Title:        "Temiz Araç",
		Description:  "İlk sahibinden",
		Price:        650000,
		PropertyType: entity.PropertyVasita,
		Details:      RawFields{"brand": "Renault"},
	})
	require.Error(t, err)
	assert.True(t, entity.IsValidation(err))

	m.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.details.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCreateListing_AssignsDenseOrderAndCover(t *testing.T) {
	uc, m := newTestListingUsecase()

	var inserted []entity.Photo
	m.listings.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.details.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	m.photos.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = append(inserted, *args.Get(1).(*entity.Photo))
	}).Return(nil)
	m.publisher.On("PublishListingCreated", mock.Anything, mock.Anything).Return(nil)

	listing, err := uc.CreateListing(context.Background(), CreateListingInput{
		ID:           "l-9",
		Title:        "Deniz Manzaralı Arsa",
		Description:  "İmarlı",
		Price:        1200000,
		PropertyType: entity.PropertyArsa,
		Details:      RawFields{"arsa_type": "imarli", "sqm": 800.0},
		Photos: []IncomingPhoto{
			{StorageID: "deniz-manzarali-arsa/1.jpg", URL: "https://cdn/1.jpg"},
			{StorageID: "deniz-manzarali-arsa/2.jpg", URL: "https://cdn/2.jpg"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "l-9", listing.ID)

	require.Len(t, inserted, 2)
	assert.Equal(t, 0, inserted[0].OrderIndex)
	assert.True(t, inserted[0].IsCover)
	assert.Equal(t, 1, inserted[1].OrderIndex)
	assert.False(t, inserted[1].IsCover)
}

func TestCreateListing_FinalizeMovesTempFolderUploads(t *testing.T) {
	uc, m := newTestListingUsecase()

	moved := []storage.MovedResource{
		{OldID: "temp-123/1.jpg", NewID: "bahcelievlerde-daire/1.jpg", NewURL: "https://cdn/bahcelievlerde-daire/1.jpg"},
	}
	m.storage.On("RenameFolder", mock.Anything, "temp-123", "bahcelievlerde-daire").Return(moved, nil)
	m.listings.On("Create", mock.Anything, mock.Anything).Return(nil)
	m.details.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	m.addresses.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	var inserted []entity.Photo
	m.photos.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = append(inserted, *args.Get(1).(*entity.Photo))
	}).Return(nil)
	m.publisher.On("PublishListingCreated", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.CreateListing(context.Background(), CreateListingInput{
		ID:           "l-9",
		Title:        "Bahçelievlerde Daire",
		Description:  "Ara kat",
		Price:        1800000,
		PropertyType: entity.PropertyKonut,
		Details: RawFields{
			"konut_type":   "daire",
			"gross_sqm":    110.0,
			"room_count":   "2+1",
			"building_age": 3.0,
			"floor":        2.0,
			"total_floors": 5.0,
			"heating":      "dogalgaz",
		},
		Address:    &AddressInput{Province: "Yalova", District: "Merkez"},
		Photos:     []IncomingPhoto{{StorageID: "temp-123/1.jpg", URL: "https://cdn/temp-123/1.jpg"}},
		TempFolder: "temp-123",
	})
	require.NoError(t, err)

	require.Len(t, inserted, 1)
	assert.Equal(t, "bahcelievlerde-daire/1.jpg", inserted[0].StorageID)
	assert.Equal(t, "https://cdn/bahcelievlerde-daire/1.jpg", inserted[0].URL)
}

func TestGetListing_CacheHitSkipsDatastore(t *testing.T) {
	uc, m := newTestListingUsecase()

	cached := entity.Listing{ID: "l-1", Title: "Merkezde Daire", PropertyType: entity.PropertyKonut}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	m.cache.On("Get", mock.Anything, "listing:l-1").Return(raw, nil)

	listing, err := uc.GetListing(context.Background(), "l-1")
	require.NoError(t, err)
	assert.Equal(t, "Merkezde Daire", listing.Title)

	m.listings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetListing_CacheMissFallsThroughAndFills(t *testing.T) {
	uc, m := newTestListingUsecase()

	stored := &entity.Listing{ID: "l-1", Title: "Merkezde Daire"}
	m.cache.On("Get", mock.Anything, "listing:l-1").Return(nil, cache.ErrNotFound)
	m.listings.On("GetByID", mock.Anything, "l-1").Return(stored, nil)
	m.cache.On("Set", mock.Anything, "listing:l-1", mock.Anything, listingCacheTTL).Return(nil)

	listing, err := uc.GetListing(context.Background(), "l-1")
	require.NoError(t, err)
	assert.Equal(t, stored, listing)

	m.cache.AssertExpectations(t)
}

func TestSetActive_PatchesAndInvalidates(t *testing.T) {
	uc, m := newTestListingUsecase()

	m.listings.On("UpdateFields", mock.Anything, "l-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, hasStamp := fields["updated_at"]
		return fields["is_active"] == false && hasStamp
	})).Return(nil)
	m.cache.On("Delete", mock.Anything, "listing:l-1").Return(nil)

	err := uc.SetActive(context.Background(), "l-1", false)
	require.NoError(t, err)

	m.listings.AssertExpectations(t)
	m.cache.AssertExpectations(t)
}

func TestQuickEdit_RejectsEmptyPatch(t *testing.T) {
	uc, m := newTestListingUsecase()

	err := uc.QuickEdit(context.Background(), "l-1", "", 0)
	require.Error(t, err)
	assert.True(t, entity.IsValidation(err))

	m.listings.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteListing_CascadesRowsThenBlobs(t *testing.T) {
	uc, m := newTestListingUsecase()

	m.listings.On("GetByID", mock.Anything, "l-1").Return(&entity.Listing{
		ID: "l-1", Title: "Merkezde Daire", PropertyType: entity.PropertyKonut,
	}, nil)
	m.photos.On("ListByListingID", mock.Anything, "l-1").Return([]entity.Photo{
		{StorageID: "merkezde-daire/1.jpg", ListingID: "l-1", OrderIndex: 0, IsCover: true},
	}, nil)
	m.photos.On("DeleteByListingID", mock.Anything, "l-1").Return(nil)
	m.details.On("Delete", mock.Anything, entity.PropertyKonut, "l-1").Return(nil)
	m.addresses.On("Delete", mock.Anything, "l-1").Return(nil)
	m.listings.On("Delete", mock.Anything, "l-1").Return(nil)
	m.storage.On("Delete", mock.Anything, "merkezde-daire/1.jpg").Return(nil)
	m.cache.On("Delete", mock.Anything, "listing:l-1").Return(nil)
	m.publisher.On("PublishListingDeleted", mock.Anything, "l-1").Return(nil)

	err := uc.DeleteListing(context.Background(), "l-1")
	require.NoError(t, err)

	m.listings.AssertExpectations(t)
	m.photos.AssertExpectations(t)
	m.storage.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestDeleteListing_MissingListingShortCircuits(t *testing.T) {
	uc, m := newTestListingUsecase()

	m.listings.On("GetByID", mock.Anything, "l-404").Return(nil, entity.ErrListingNotFound)

	err := uc.DeleteListing(context.Background(), "l-404")
	assert.ErrorIs(t, err, entity.ErrListingNotFound)

	m.photos.AssertNotCalled(t, "DeleteByListingID", mock.Anything, mock.Anything)
}

func TestDuplicateListing_CopiesRowsAndBlobsUnderNewID(t *testing.T) {
	uc, m := newTestListingUsecase()

	src := &entity.Listing{
		ID:           "l-1",
		Title:        "Merkezde Daire",
		Description:  "Geniş",
		Price:        2500000,
		PropertyType: entity.PropertyKonut,
		Status:       entity.StatusSatilik,
		IsActive:     true,
	}
	m.listings.On("GetByID", mock.Anything, "l-1").Return(src, nil)
	m.details.On("GetByListingID", mock.Anything, entity.PropertyKonut, "l-1").
		Return(entity.KonutDetails{ListingID: "l-1", KonutType: "daire", RoomCount: "3+1"}, nil)
	m.photos.On("ListByListingID", mock.Anything, "l-1").Return([]entity.Photo{
		{StorageID: "merkezde-daire/1.jpg", ListingID: "l-1", OrderIndex: 0, IsCover: true},
	}, nil)

	var created *entity.Listing
	m.listings.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.Listing)
	}).Return(nil)

	var copiedDetails entity.ListingDetails
	m.details.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		copiedDetails = args.Get(1).(entity.ListingDetails)
	}).Return(nil)

	m.addresses.On("GetByListingID", mock.Anything, "l-1").
		Return(&entity.Address{ListingID: "l-1", Province: "Yalova"}, nil)
	m.addresses.On("Upsert", mock.Anything, mock.MatchedBy(func(a *entity.Address) bool {
		return a.ListingID != "l-1" && a.Province == "Yalova"
	})).Return(nil)

	m.storage.On("CopyFolder", mock.Anything, "merkezde-daire", "merkezde-daire-kopya").
		Return([]storage.MovedResource{
			{OldID: "merkezde-daire/1.jpg", NewID: "merkezde-daire-kopya/1.jpg", NewURL: "https://cdn/merkezde-daire-kopya/1.jpg"},
		}, nil)

	var insertedPhoto *entity.Photo
	m.photos.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		insertedPhoto = args.Get(1).(*entity.Photo)
	}).Return(nil)
	m.publisher.On("PublishListingCreated", mock.Anything, mock.Anything).Return(nil)

	dup, err := uc.DuplicateListing(context.Background(), "l-1")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEqual(t, "l-1", dup.ID)
	assert.Equal(t, "Merkezde Daire (Kopya)", dup.Title)
	assert.False(t, dup.IsActive, "copies start hidden")

	konut, ok := copiedDetails.(entity.KonutDetails)
	require.True(t, ok)
	assert.Equal(t, dup.ID, konut.ListingID)

	require.NotNil(t, insertedPhoto)
	assert.Equal(t, "merkezde-daire-kopya/1.jpg", insertedPhoto.StorageID)
	assert.Equal(t, dup.ID, insertedPhoto.ListingID)
	assert.True(t, insertedPhoto.IsCover)
}
