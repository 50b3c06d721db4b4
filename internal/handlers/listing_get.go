package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/ilansitesi/classifieds/internal/services"
)

// ListingGetter defines the interface that the listing service must implement.
type ListingGetter interface {
	GetByID(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error)
}

// NewGetListingHandler returns an HTTP handler for the public listing detail.
// @Summary Get a listing
// @Description Returns a single listing by id. Public, any caller may read any listing.
// @Tags listings
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} models.ListingDB "Listing detail"
// @Failure 404 {object} handlers.ListingErrorResponse "Listing not found"
// @Router /listings/{listingID} [get]
func NewGetListingHandler(svc ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Listing not found"})
			return
		}

		listing, err := svc.GetByID(r.Context(), listingID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Listing not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(listing)
	}
}
