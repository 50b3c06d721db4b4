package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/handlers"
	"github.com/ilansitesi/classifieds/internal/middlewares"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/ilansitesi/classifieds/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteListingHandler(t *testing.T) {
	ownerID := uuid.New()
	owner := &models.UserDB{UserID: ownerID}
	listingID := uuid.New()

	tests := []struct {
		name       string
		listingID  string
		withUser   bool
		setup      func(svc *handlers.MockListingDeleter)
		wantStatus int
		wantBody   string
	}{
		{
			name:      "successful delete",
			listingID: listingID.String(),
			withUser:  true,
			setup: func(svc *handlers.MockListingDeleter) {
				svc.EXPECT().Delete(gomock.Any(), ownerID, listingID).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Listing deleted"}`,
		},
		{
			name:       "unauthenticated",
			listingID:  listingID.String(),
			withUser:   false,
			setup:      func(svc *handlers.MockListingDeleter) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:       "malformed listing id",
			listingID:  "42",
			withUser:   true,
			setup:      func(svc *handlers.MockListingDeleter) {},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Listing not found"}`,
		},
		{
			name:      "foreign listing reported as not found",
			listingID: listingID.String(),
			withUser:  true,
			setup: func(svc *handlers.MockListingDeleter) {
				svc.EXPECT().Delete(gomock.Any(), ownerID, listingID).Return(services.ErrListingNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Listing not found"}`,
		},
		{
			name:      "service failure",
			listingID: listingID.String(),
			withUser:  true,
			setup: func(svc *handlers.MockListingDeleter) {
				svc.EXPECT().Delete(gomock.Any(), ownerID, listingID).Return(errors.New("db error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := handlers.NewMockListingDeleter(ctrl)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodDelete, "/listings/"+tt.listingID, nil)
			req = withURLParam(req, "listingID", tt.listingID)
			if tt.withUser {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), owner))
			}
			rr := httptest.NewRecorder()

			handlers.NewDeleteListingHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
