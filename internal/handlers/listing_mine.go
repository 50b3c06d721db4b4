package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/middlewares"
	"github.com/ilansitesi/classifieds/internal/models"
)

// OwnListingLister defines the interface that the listing service must implement.
type OwnListingLister interface {
	ListOwn(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error)
}

// NewMyListingsHandler returns an HTTP handler listing the caller's listings.
// @Summary List own listings
// @Description Returns all listings owned by the authenticated user.
// @Tags listings
// @Produce json
// @Success 200 {array} models.ListingDB "Owned listings"
// @Failure 401 {object} handlers.ListingErrorResponse "Unauthorized"
// @Router /listings/mine [get]
// @Security BearerAuth
func NewMyListingsHandler(svc OwnListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Unauthorized"})
			return
		}

		listings, err := svc.ListOwn(r.Context(), user.UserID)
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
