package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ceyhunemlak/listing-service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPhotoUsecase() (*PhotoUsecase, *MockPhotoStorage, *MockPhotoRepository, *MockListingRepository) {
	st := new(MockPhotoStorage)
	ph := new(MockPhotoRepository)
	li := new(MockListingRepository)
	return NewPhotoUsecase(st, ph, li, zap.NewNop()), st, ph, li
}

func TestUploadPhoto_AppendsAfterExistingGallery(t *testing.T) {
	uc, st, ph, li := newTestPhotoUsecase()

	li.On("GetByID", mock.Anything, "l-1").Return(&entity.Listing{ID: "l-1", Title: "Merkezde Daire"}, nil)
	ph.On("ListByListingID", mock.Anything, "l-1").Return([]entity.Photo{
		{StorageID: "merkezde-daire/1.jpg", OrderIndex: 0, IsCover: true},
		{StorageID: "merkezde-daire/2.jpg", OrderIndex: 1},
	}, nil)
	st.On("Upload", mock.Anything, "merkezde-daire", "salon.jpg", mock.Anything).
		Return("merkezde-daire/abc.jpg", "https://cdn/merkezde-daire/abc.jpg", nil)
	ph.On("Insert", mock.Anything, mock.Anything).Return(nil)

	photo, err := uc.UploadPhoto(context.Background(), "l-1", "salon.jpg", []byte("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "merkezde-daire/abc.jpg", photo.StorageID)
	assert.Equal(t, 2, photo.OrderIndex)
	assert.False(t, photo.IsCover)
}

func TestUploadPhoto_FirstUploadBecomesCover(t *testing.T) {
	uc, st, ph, li := newTestPhotoUsecase()

	li.On("GetByID", mock.Anything, "l-1").Return(&entity.Listing{ID: "l-1", Title: "Merkezde Daire"}, nil)
	ph.On("ListByListingID", mock.Anything, "l-1").Return(nil, nil)
	st.On("Upload", mock.Anything, "merkezde-daire", "salon.jpg", mock.Anything).
		Return("merkezde-daire/abc.jpg", "https://cdn/merkezde-daire/abc.jpg", nil)
	ph.On("Insert", mock.Anything, mock.Anything).Return(nil)

	photo, err := uc.UploadPhoto(context.Background(), "l-1", "salon.jpg", []byte("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, 0, photo.OrderIndex)
	assert.True(t, photo.IsCover)
}

func TestUploadPhoto_RowInsertFailureRollsBlobBack(t *testing.T) {
	uc, st, ph, li := newTestPhotoUsecase()

	li.On("GetByID", mock.Anything, "l-1").Return(&entity.Listing{ID: "l-1", Title: "Merkezde Daire"}, nil)
	ph.On("ListByListingID", mock.Anything, "l-1").Return(nil, nil)
	st.On("Upload", mock.Anything, "merkezde-daire", "salon.jpg", mock.Anything).
		Return("merkezde-daire/abc.jpg", "https://cdn/merkezde-daire/abc.jpg", nil)
	ph.On("Insert", mock.Anything, mock.Anything).Return(errors.New("write conflict"))
	st.On("Delete", mock.Anything, "merkezde-daire/abc.jpg").Return(nil)

	_, err := uc.UploadPhoto(context.Background(), "l-1", "salon.jpg", []byte("jpeg"))
	require.Error(t, err)

	st.AssertCalled(t, "Delete", mock.Anything, "merkezde-daire/abc.jpg")
}

func TestUploadPhoto_UnknownListing(t *testing.T) {
	uc, st, _, li := newTestPhotoUsecase()

	li.On("GetByID", mock.Anything, "l-404").Return(nil, entity.ErrListingNotFound)

	_, err := uc.UploadPhoto(context.Background(), "l-404", "salon.jpg", []byte("jpeg"))
	assert.ErrorIs(t, err, entity.ErrListingNotFound)

	st.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
