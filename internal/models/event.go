package models

// Listing lifecycle event types.
const (
	EventListingCreated = "listing_created"
	EventListingUpdated = "listing_updated"
	EventListingDeleted = "listing_deleted"
)

// ListingEvent is published to the broker on every listing mutation.
type ListingEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	ListingID string `json:"listing_id"`
	OwnerID   string `json:"owner_id"`
	Timestamp int64  `json:"timestamp"`
}
