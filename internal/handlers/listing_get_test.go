package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/handlers"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/ilansitesi/classifieds/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetListingHandler(t *testing.T) {
	listingID := uuid.New()

	tests := []struct {
		name       string
		listingID  string
		setup      func(svc *handlers.MockListingGetter)
		wantStatus int
		wantBody   string
	}{
		{
			name:      "found",
			listingID: listingID.String(),
			setup: func(svc *handlers.MockListingGetter) {
				svc.EXPECT().
					GetByID(gomock.Any(), listingID).
					Return(&models.ListingDB{ListingID: listingID, Title: "Kiralık daire"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "not found",
			listingID: listingID.String(),
			setup: func(svc *handlers.MockListingGetter) {
				svc.EXPECT().
					GetByID(gomock.Any(), listingID).
					Return(nil, services.ErrListingNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Listing not found"}`,
		},
		{
			name:       "malformed id",
			listingID:  "not-a-uuid",
			setup:      func(svc *handlers.MockListingGetter) {},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Listing not found"}`,
		},
		{
			name:      "service failure",
			listingID: listingID.String(),
			setup: func(svc *handlers.MockListingGetter) {
				svc.EXPECT().
					GetByID(gomock.Any(), listingID).
					Return(nil, errors.New("db error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := handlers.NewMockListingGetter(ctrl)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodGet, "/listings/"+tt.listingID, nil)
			req = withURLParam(req, "listingID", tt.listingID)
			rr := httptest.NewRecorder()

			handlers.NewGetListingHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"Kiralık daire"`)
			}
		})
	}
}
