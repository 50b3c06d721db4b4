package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/models"
)

// UserListingLister defines the interface that the listing service must implement.
type UserListingLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error)
}

// NewUserListingsHandler returns an HTTP handler for the public per-user listing view.
// @Summary List a user's listings
// @Description Returns all listings of one user, newest first. Public.
// @Tags listings
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} models.ListingDB "User's listings"
// @Failure 500 {object} handlers.ListingErrorResponse "Internal server error"
// @Router /listings/user/{userID} [get]
func NewUserListingsHandler(svc UserListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ownerID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]models.ListingDB{})
			return
		}

		listings, err := svc.ListByOwner(r.Context(), ownerID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Internal server error"})
			return
		}
		if listings == nil {
			listings = []models.ListingDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(listings)
	}
}
