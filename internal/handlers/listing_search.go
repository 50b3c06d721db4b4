package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/models"
)

// ListingSearcher defines the interface that the listing service must implement.
type ListingSearcher interface {
	Search(ctx context.Context, filter models.ListingFilter, page, limit int) ([]models.ListingDB, int64, int, int, error)
}

// ListingPageResponse represents one page of search results
// swagger:model ListingPageResponse
type ListingPageResponse struct {
	// Listings on this page, newest first
	Listings []models.ListingDB `json:"listings"`

	// Total number of pages
	TotalPages int `json:"total_pages"`

	// Total number of matching listings
	TotalCount int64 `json:"total_count"`

	// 1-indexed page number
	CurrentPage int `json:"current_page"`
}

// NewSearchListingsHandler returns an HTTP handler for the public listing search.
// @Summary Search listings
// @Description Filtered, paginated public listing search. Free-text search matches title, description or location.
// @Tags listings
// @Produce json
// @Param search query string false "Case-insensitive substring filter"
// @Param category query string false "Exact category filter"
// @Param showSold query bool false "Include sold listings (default true)"
// @Param page query int false "1-indexed page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} handlers.ListingPageResponse "One page of listings"
// @Failure 500 {object} handlers.ListingErrorResponse "Internal server error"
// @Router /listings [get]
func NewSearchListingsHandler(svc ListingSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		q := r.URL.Query()

		filter := models.ListingFilter{
			Search:   q.Get("search"),
			Category: q.Get("category"),
			ShowSold: true,
		}
		if v := q.Get("showSold"); v != "" {
			if showSold, err := strconv.ParseBool(v); err == nil {
				filter.ShowSold = showSold
			}
		}

		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		listings, total, totalPages, currentPage, err := svc.Search(r.Context(), filter, page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListingErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListingPageResponse{
			Listings:    listings,
			TotalPages:  totalPages,
			TotalCount:  total,
			CurrentPage: currentPage,
		})
	}
}
