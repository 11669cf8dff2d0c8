package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/ceyhunemlak/listing-service/internal/entity"
	"github.com/ceyhunemlak/listing-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxUploadSize = 20 << 20 // 20 MiB

type ListingHandler struct {
	listings *usecase.ListingUsecase
	photos   *usecase.PhotoUsecase
	logger   *zap.Logger
}

func NewListingHandler(listings *usecase.ListingUsecase, photos *usecase.PhotoUsecase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{listings: listings, photos: photos, logger: logger}
}

func (h *ListingHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// writeError maps the error taxonomy onto the response contract:
// validation errors surface their Turkish domain message with a 400;
// persistence errors surface a generic message with a 500, the cause
// stays in the logs.
func (h *ListingHandler) writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: ve.Message})
	case errors.Is(err, entity.ErrListingNotFound):
		h.writeJSON(w, http.StatusNotFound, resultResponse{Success: false, Message: "İlan bulunamadı"})
	default:
		h.logger.Error("Request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, resultResponse{Success: false, Message: "İşlem başarısız oldu"})
	}
}

func (h *ListingHandler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var payload listingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Geçersiz istek gövdesi"})
		return
	}

	listing, err := h.listings.CreateListing(r.Context(), usecase.CreateListingInput{
		ID:           payload.ID,
		Title:        payload.Title,
		Description:  payload.Description,
		Price:        payload.Price,
		PropertyType: entity.PropertyType(payload.PropertyType),
		Status:       entity.ListingStatus(payload.ListingStatus),
		IsActive:     payload.IsActive,
		IsFeatured:   payload.IsFeatured,
		Details:      usecase.RawFields(payload.Details),
		Photos:       payload.incomingPhotos(),
		Address:      payload.addressInput(),
		TempFolder:   payload.TempFolder,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resultResponse{Success: true, ID: listing.ID})
}

func (h *ListingHandler) HandleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload listingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Geçersiz istek gövdesi"})
		return
	}

	input := usecase.UpdateListingInput{
		ID:             id,
		Title:          payload.Title,
		Description:    payload.Description,
		Price:          payload.Price,
		PropertyType:   entity.PropertyType(payload.PropertyType),
		Status:         entity.ListingStatus(payload.ListingStatus),
		IsActive:       payload.IsActive,
		IsFeatured:     payload.IsFeatured,
		Details:        usecase.RawFields(payload.Details),
		Photos:         payload.incomingPhotos(),
		PhotosToDelete: payload.PhotosToDelete,
		Address:        payload.addressInput(),
	}
	if payload.FolderRename != nil {
		input.FolderRename = &usecase.FolderRename{
			OldPath: payload.FolderRename.OldPath,
			NewPath: payload.FolderRename.NewPath,
		}
	}

	if err := h.listings.UpdateListing(r.Context(), input); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Success: true, ID: id})
}

func (h *ListingHandler) HandleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.listings.DeleteListing(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Success: true, ID: id})
}

func (h *ListingHandler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := h.listings.GetListingView(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toListingViewResponse(view))
}

func (h *ListingHandler) HandleListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.ListingFilter{
		Query:        q.Get("q"),
		PropertyType: entity.PropertyType(q.Get("property_type")),
		Status:       entity.ListingStatus(q.Get("listing_status")),
		OnlyActive:   q.Get("active") == "true",
		OnlyFeatured: q.Get("featured") == "true",
	}
	filter.MinPrice, _ = strconv.ParseFloat(q.Get("min_price"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(q.Get("max_price"), 64)
	filter.Page, _ = strconv.ParseInt(q.Get("page"), 10, 64)
	filter.Limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)

	listings, total, err := h.listings.SearchListings(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := listingListResponse{Total: total, Listings: make([]listingResponse, 0, len(listings))}
	for _, l := range listings {
		resp.Listings = append(resp.Listings, toListingResponse(l))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *ListingHandler) HandleDuplicateListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dup, err := h.listings.DuplicateListing(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resultResponse{Success: true, ID: dup.ID})
}

func (h *ListingHandler) HandleActiveToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload togglePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Geçersiz istek gövdesi"})
		return
	}
	if err := h.listings.SetActive(r.Context(), id, payload.Value); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Success: true, ID: id})
}

func (h *ListingHandler) HandleFeaturedToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload togglePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Geçersiz istek gövdesi"})
		return
	}
	if err := h.listings.SetFeatured(r.Context(), id, payload.Value); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Success: true, ID: id})
}

func (h *ListingHandler) HandleQuickEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload quickEditPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Geçersiz istek gövdesi"})
		return
	}
	if err := h.listings.QuickEdit(r.Context(), id, payload.Title, payload.Price); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resultResponse{Success: true, ID: id})
}

func (h *ListingHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Geçersiz dosya yüklemesi"})
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, resultResponse{Success: false, Message: "Fotoğraf dosyası bulunamadı"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		h.writeError(w, err)
		return
	}

	photo, err := h.photos.UploadPhoto(r.Context(), id, header.Filename, data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, photoResponse{
		ID:         photo.StorageID,
		URL:        photo.URL,
		OrderIndex: photo.OrderIndex,
		IsCover:    photo.IsCover,
	})
}
