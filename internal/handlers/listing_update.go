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
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/ilansitesi/classifieds/internal/services"
)

// ListingUpdater defines the interface that the listing service must implement.
type ListingUpdater interface {
	Update(ctx context.Context, ownerID, listingID uuid.UUID, patch models.ListingPatch) (*models.ListingDB, error)
}

// ListingPatchRequest represents the JSON body for a partial listing update.
// Absent fields are left untouched.
// swagger:model ListingPatchRequest
type ListingPatchRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Images      []string `json:"images"`
	Location    *string  `json:"location"`
	Status      *string  `json:"status"`
}

// NewUpdateListingHandler returns an HTTP handler for updating an owned listing.
// @Summary Update a listing
// @Description Merges the patch into the listing. Listings owned by other users are reported as not found.
// @Tags listings
// @Accept json
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param patch body handlers.ListingPatchRequest true "Partial listing fields"
// @Success 200 {object} models.ListingDB "Updated listing"
// @Failure 400 {object} handlers.ListingErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ListingErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ListingErrorResponse "Listing not found"
// @Router /listings/{listingID} [put]
// @Security BearerAuth
func NewUpdateListingHandler(svc ListingUpdater) http.HandlerFunc {
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

		var req ListingPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "invalid request body"})
			return
		}

		listing, err := svc.Update(r.Context(), user.UserID, listingID, models.ListingPatch{
			Title:       req.Title,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Images:      req.Images,
			Location:    req.Location,
			Status:      req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Listing not found"})
			case errors.Is(err, services.ErrListingValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListingErrorResponse{Error: err.Error()})
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
