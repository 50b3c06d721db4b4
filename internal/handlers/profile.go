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

// ProfileUpdater defines the interface that the profile service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, surname, email, phone string) (*models.UserDB, error)
}

// ProfileRequest represents the JSON body for a profile update
// swagger:model ProfileRequest
type ProfileRequest struct {
	// Given name
	// required: true
	Name string `json:"name"`

	// Family name
	// required: true
	Surname string `json:"surname"`

	// Email
	// required: true
	Email string `json:"email"`

	// Phone number
	// required: true
	Phone string `json:"phone"`
}

// ProfileResponse represents a successful profile update response
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Public user fields
	User UserPayload `json:"user"`
}

// ProfileErrorResponse represents an error response for a profile update
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Email already in use
	Error string `json:"error"`
}

// NewProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update profile
// @Description Updates name, surname, email and phone of the authenticated user. The password is not touched.
// @Tags auth
// @Accept json
// @Produce json
// @Param profileRequest body handlers.ProfileRequest true "Profile update request"
// @Success 200 {object} handlers.ProfileResponse "Updated user"
// @Failure 400 {object} handlers.ProfileErrorResponse "Email already in use / invalid request"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Router /profile [put]
// @Security BearerAuth
func NewProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), user.UserID, req.Name, req.Surname, req.Email, req.Phone)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Email already in use",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			User: newUserPayload(updated),
		})
	}
}
