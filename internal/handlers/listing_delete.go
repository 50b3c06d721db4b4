package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/middlewares"
	"github.com/ilansitesi/classifieds/internal/services"
)

// ListingDeleter defines the interface that the listing service must implement.
type ListingDeleter interface {
	Delete(ctx context.Context, ownerID, listingID uuid.UUID) error
}

// ListingDeleteResponse confirms a deletion
// swagger:model ListingDeleteResponse
type ListingDeleteResponse struct {
	// Confirmation message
	// default: Listing deleted
	Message string `json:"message"`
}

// NewDeleteListingHandler returns an HTTP handler for deleting an owned listing.
// @Summary Delete a listing
// @Description Removes the listing. Listings owned by other users are reported as not found.
// @Tags listings
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} handlers.ListingDeleteResponse "Deletion confirmation"
// @Failure 401 {object} handlers.ListingErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ListingErrorResponse "Listing not found"
// @Router /listings/{listingID} [delete]
// @Security BearerAuth
func NewDeleteListingHandler(svc ListingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Unauthorized"})
			return
		}

		listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Listing not found"})
			return
		}

		if err := svc.Delete(r.Context(), user.UserID, listingID); err != nil {
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
		json.NewEncoder(w).Encode(ListingDeleteResponse{Message: "Listing deleted"})
	}
}
