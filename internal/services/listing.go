package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrListingNotFound is returned when a listing does not exist or is
	// owned by another user; the two cases are indistinguishable.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingValidation is returned when listing input fails validation.
	ErrListingValidation = errors.New("invalid listing")
)

// ListingReader defines read operations for listings.
type ListingReader interface {
	GetByID(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error)
	GetByIDForOwner(ctx context.Context, listingID, ownerID uuid.UUID) (*models.ListingDB, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID, newestFirst bool) ([]models.ListingDB, error)
	Search(ctx context.Context, filter models.ListingFilter, limit, offset int) ([]models.ListingDB, int64, error)
}

// ListingWriter defines write operations for listings.
type ListingWriter interface {
	Save(ctx context.Context, l *models.ListingDB) error
	Update(ctx context.Context, l *models.ListingDB) error
	Delete(ctx context.Context, listingID, ownerID uuid.UUID) error
}

// ListingCache caches listing detail records.
type ListingCache interface {
	Get(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error)
	Set(ctx context.Context, listing *models.ListingDB) error
	Delete(ctx context.Context, listingID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ListingService handles ownership-scoped listing operations, the public
// search, cache maintenance and lifecycle event publishing.
type ListingService struct {
	reader      ListingReader
	writer      ListingWriter
	cache       ListingCache
	kafkaWriter KafkaWriter
}

// NewListingService creates a new ListingService.
func NewListingService(reader ListingReader, writer ListingWriter, cache ListingCache, kafkaWriter KafkaWriter) *ListingService {
	return &ListingService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// DefaultPageSize is used when the caller supplies no limit.
const DefaultPageSize = 20

// publishEvent publishes a listing lifecycle event, best-effort.
func (s *ListingService) publishEvent(ctx context.Context, eventType string, listingID, ownerID uuid.UUID) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "listing_id", listingID)
		return
	}

	event := models.ListingEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ListingID: listingID.String(),
		OwnerID:   ownerID.String(),
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal listing event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ListingID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish listing event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("listing event published", "event_id", event.EventID, "type", eventType)
	}
}

func validateListing(l *models.ListingDB) error {
	switch {
	case l.Title == "":
		return fmt.Errorf("%w: title is required", ErrListingValidation)
	case l.Description == "":
		return fmt.Errorf("%w: description is required", ErrListingValidation)
	case l.Location == "":
		return fmt.Errorf("%w: location is required", ErrListingValidation)
	case l.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrListingValidation)
	case !models.IsValidCategory(l.Category):
		return fmt.Errorf("%w: unknown category %q", ErrListingValidation, l.Category)
	case len(l.Images) == 0:
		return fmt.Errorf("%w: at least one image is required", ErrListingValidation)
	case !models.IsValidStatus(l.Status):
		return fmt.Errorf("%w: unknown status %q", ErrListingValidation, l.Status)
	}
	return nil
}

// Create validates the input and stores a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, input models.ListingCreate) (*models.ListingDB, error) {
	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	listing := &models.ListingDB{
		ListingID:   uuid.New(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Images:      models.StringSlice(input.Images),
		Location:    input.Location,
		Status:      status,
	}

	if err := validateListing(listing); err != nil {
		logger.Log.Errorw("listing validation failed", "owner_id", ownerID, "err", err)
		return nil, err
	}

	if err := s.writer.Save(ctx, listing); err != nil {
		logger.Log.Errorw("failed to save listing", "owner_id", ownerID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventListingCreated, listing.ListingID, ownerID)

	return listing, nil
}

// ListOwn returns all listings owned by ownerID in insertion order.
func (s *ListingService) ListOwn(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error) {
	listings, err := s.reader.GetByOwnerID(ctx, ownerID, false)
	if err != nil {
		logger.Log.Errorw("failed to list own listings", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return listings, nil
}

// ListByOwner is the public per-user view, newest first.
func (s *ListingService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ListingDB, error) {
	listings, err := s.reader.GetByOwnerID(ctx, ownerID, true)
	if err != nil {
		logger.Log.Errorw("failed to list user listings", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return listings, nil
}

// Update merges the patch into the listing owned by ownerID, re-validates
// and stores the result. Returns ErrListingNotFound when the listing is
// absent or owned by somebody else.
func (s *ListingService) Update(ctx context.Context, ownerID, listingID uuid.UUID, patch models.ListingPatch) (*models.ListingDB, error) {
	listing, err := s.reader.GetByIDForOwner(ctx, listingID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load listing", "listing_id", listingID, "err", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	if patch.Title != nil {
		listing.Title = *patch.Title
	}
	if patch.Description != nil {
		listing.Description = *patch.Description
	}
	if patch.Price != nil {
		listing.Price = *patch.Price
	}
	if patch.Category != nil {
		listing.Category = *patch.Category
	}
	if patch.Images != nil {
		listing.Images = models.StringSlice(patch.Images)
	}
	if patch.Location != nil {
		listing.Location = *patch.Location
	}
	if patch.Status != nil {
		listing.Status = *patch.Status
	}

	if err := validateListing(listing); err != nil {
		logger.Log.Errorw("listing validation failed", "listing_id", listingID, "err", err)
		return nil, err
	}

	if err := s.writer.Update(ctx, listing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		logger.Log.Errorw("failed to update listing", "listing_id", listingID, "err", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, listingID); err != nil {
			logger.Log.Errorw("failed to invalidate listing cache", "listing_id", listingID, "err", err)
		}
	}

	s.publishEvent(ctx, models.EventListingUpdated, listingID, ownerID)

	return listing, nil
}

// Delete removes the listing owned by ownerID with the same not-found
// conflation as Update.
func (s *ListingService) Delete(ctx context.Context, ownerID, listingID uuid.UUID) error {
	if err := s.writer.Delete(ctx, listingID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrListingNotFound
		}
		logger.Log.Errorw("failed to delete listing", "listing_id", listingID, "err", err)
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, listingID); err != nil {
			logger.Log.Errorw("failed to invalidate listing cache", "listing_id", listingID, "err", err)
		}
	}

	s.publishEvent(ctx, models.EventListingDeleted, listingID, ownerID)

	return nil
}

// Search returns one page of listings matching the filter, plus the total
// match count and page count. Out-of-range pages yield an empty page.
func (s *ListingService) Search(ctx context.Context, filter models.ListingFilter, page, limit int) ([]models.ListingDB, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	offset := (page - 1) * limit

	listings, total, err := s.reader.Search(ctx, filter, limit, offset)
	if err != nil {
		logger.Log.Errorw("listing search failed", "filter", filter, "err", err)
		return nil, 0, 0, 0, err
	}
	if listings == nil {
		listings = []models.ListingDB{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return listings, total, totalPages, page, nil
}

// GetByID is the public detail read, cache-aside over Redis.
func (s *ListingService) GetByID(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listingID)
		if err != nil {
			logger.Log.Errorw("listing cache read failed", "listing_id", listingID, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	listing, err := s.reader.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "listing_id", listingID, "err", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, listing); err != nil {
			logger.Log.Errorw("failed to cache listing", "listing_id", listingID, "err", err)
		}
	}

	return listing, nil
}
