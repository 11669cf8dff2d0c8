package httpapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *ListingHandler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)

	mux.Route("/api/listings", func(r chi.Router) {
		r.Post("/", h.HandleCreateListing)
		r.Get("/", h.HandleListListings)
		r.Get("/{id}", h.HandleGetListing)
		r.Put("/{id}", h.HandleUpdateListing)
		r.Delete("/{id}", h.HandleDeleteListing)
		r.Post("/{id}/duplicate", h.HandleDuplicateListing)
		r.Patch("/{id}/active", h.HandleActiveToggle)
		r.Patch("/{id}/featured", h.HandleFeaturedToggle)
		r.Patch("/{id}/quick-edit", h.HandleQuickEdit)
		r.Post("/{id}/photos", h.HandleUploadPhoto)
	})

	return mux
}
