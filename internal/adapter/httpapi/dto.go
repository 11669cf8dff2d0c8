package httpapi

import (
	"github.com/ceyhunemlak/listing-service/internal/entity"
	"github.com/ceyhunemlak/listing-service/internal/usecase"
)

type photoPayload struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	IsExisting bool   `json:"isExisting"`
}

type folderRenamePayload struct {
	OldPath string `json:"oldPath"`
	NewPath string `json:"newPath"`
}

type addressPayload struct {
	Province     string `json:"province"`
	District     string `json:"district"`
	Neighborhood string `json:"neighborhood"`
	FullAddress  string `json:"full_address"`
}

// listingPayload is the admin panel's submit body for both create and
// update.
type listingPayload struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price"`
	PropertyType   string                 `json:"property_type"`
	ListingStatus  string                 `json:"listing_status"`
	IsActive       bool                   `json:"is_active"`
	IsFeatured     bool                   `json:"is_featured"`
	Details        map[string]interface{} `json:"details"`
	Photos         []photoPayload         `json:"photos"`
	PhotosToDelete []string               `json:"photosToDelete"`
	FolderRename   *folderRenamePayload   `json:"folderRename,omitempty"`
	TempFolder     string                 `json:"tempFolder,omitempty"`
	Address        *addressPayload        `json:"address,omitempty"`
}

func (p *listingPayload) incomingPhotos() []usecase.IncomingPhoto {
	photos := make([]usecase.IncomingPhoto, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, usecase.IncomingPhoto{
			StorageID:  ph.ID,
			URL:        ph.URL,
			IsExisting: ph.IsExisting,
		})
	}
	return photos
}

func (p *listingPayload) addressInput() *usecase.AddressInput {
	if p.Address == nil {
		return nil
	}
	return &usecase.AddressInput{
		Province:     p.Address.Province,
		District:     p.Address.District,
		Neighborhood: p.Address.Neighborhood,
		FullAddress:  p.Address.FullAddress,
	}
}

type resultResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

type togglePayload struct {
	Value bool `json:"value"`
}

type quickEditPayload struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type photoResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	OrderIndex int    `json:"order_index"`
	IsCover    bool   `json:"is_cover"`
}

type listingResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	PropertyType  string  `json:"property_type"`
	ListingStatus string  `json:"listing_status"`
	IsActive      bool    `json:"is_active"`
	IsFeatured    bool    `json:"is_featured"`
	CreatedAt     string  `json:"created_at"`
}

type listingViewResponse struct {
	listingResponse
	Details interface{}     `json:"details,omitempty"`
	Address *addressPayload `json:"address,omitempty"`
	Photos  []photoResponse `json:"photos"`
}

type listingListResponse struct {
	Listings []listingResponse `json:"listings"`
	Total    int64             `json:"total"`
}

func toListingResponse(l *entity.Listing) listingResponse {
	return listingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Price:         l.Price,
		PropertyType:  string(l.PropertyType),
		ListingStatus: string(l.Status),
		IsActive:      l.IsActive,
		IsFeatured:    l.IsFeatured,
		CreatedAt:     l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toListingViewResponse(view *usecase.ListingView) listingViewResponse {
	resp := listingViewResponse{
		listingResponse: toListingResponse(&view.Listing),
		Details:         view.Details,
		Photos:          make([]photoResponse, 0, len(view.Photos)),
	}
	if view.Address != nil {
		resp.Address = &addressPayload{
			Province:     view.Address.Province,
			District:     view.Address.District,
			Neighborhood: view.Address.Neighborhood,
			FullAddress:  view.Address.FullAddress,
		}
	}
	for _, p := range view.Photos {
		resp.Photos = append(resp.Photos, photoResponse{
			ID:         p.StorageID,
			URL:        p.URL,
			OrderIndex: p.OrderIndex,
			IsCover:    p.IsCover,
		})
	}
	return resp
}
