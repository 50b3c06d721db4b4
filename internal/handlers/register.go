package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/ilansitesi/classifieds/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, surname, email, phone, password string) (*models.UserDB, string, error)
}

// UserPayload is the public projection of a user returned to clients.
// The password hash is never part of it.
// swagger:model UserPayload
type UserPayload struct {
	// User identifier
	ID uuid.UUID `json:"id"`

	// Given name
	// default: Ayşe
	Name string `json:"name"`

	// Family name
	// default: Yılmaz
	Surname string `json:"surname"`

	// Email
	// default: ayse@example.com
	Email string `json:"email"`

	// Phone number
	// default: 05551234567
	Phone string `json:"phone"`
}

func newUserPayload(u *models.UserDB) UserPayload {
	return UserPayload{
		ID:      u.UserID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Phone:   u.Phone,
	}
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
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

	// Password
	// required: true
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Session token
	Token string `json:"token"`

	// Public user fields
	User UserPayload `json:"user"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Email already in use
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. The password is hashed before storing. Returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Email already in use / invalid request"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, token, err := svc.Register(r.Context(), req.Name, req.Surname, req.Email, req.Phone, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Email already in use",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Token: token,
			User:  newUserPayload(user),
		})
	}
}
