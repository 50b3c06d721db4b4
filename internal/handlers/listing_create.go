package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/middlewares"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/ilansitesi/classifieds/internal/services"
)

// ListingCreator defines the interface that the listing service must implement.
type ListingCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, input models.ListingCreate) (*models.ListingDB, error)
}

// ListingCreateRequest represents the JSON body for creating a listing
// swagger:model ListingCreateRequest
type ListingCreateRequest struct {
	// Listing title
	// required: true
	Title string `json:"title"`

	// Listing description
	// required: true
	Description string `json:"description"`

	// Price, non-negative
	// required: true
	Price float64 `json:"price"`

	// Category, one of the fixed set
	// required: true
	// default: Vasıta
	Category string `json:"category"`

	// Image references, at least one
	// required: true
	Images []string `json:"images"`

	// Location
	// required: true
	Location string `json:"location"`

	// Status, defaults to Aktif
	Status string `json:"status"`
}

// ListingErrorResponse represents an error response for listing operations
// swagger:model ListingErrorResponse
type ListingErrorResponse struct {
	// Error message
	// default: Listing not found
	Error string `json:"error"`
}

// NewCreateListingHandler returns an HTTP handler for creating a listing.
// @Summary Create a listing
// @Description Creates a new listing owned by the authenticated user.
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body handlers.ListingCreateRequest true "Listing fields"
// @Success 201 {object} models.ListingDB "Created listing"
// @Failure 400 {object} handlers.ListingErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ListingErrorResponse "Unauthorized"
// @Router /listings [post]
// @Security BearerAuth
func NewCreateListingHandler(svc ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ListingCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "invalid request body"})
			return
		}

		listing, err := svc.Create(r.Context(), user.UserID, models.ListingCreate{
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(listing)
	}
}
