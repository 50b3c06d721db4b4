package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/redis/go-redis/v9"
)

// ListingCacheRepository caches listing detail records in Redis.
type ListingCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached listings
}

// NewListingCacheRepository creates a new repository instance with the given TTL.
func NewListingCacheRepository(client *redis.Client, expiration time.Duration) *ListingCacheRepository {
	return &ListingCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func listingKey(listingID uuid.UUID) string {
	return fmt.Sprintf("listing:%s", listingID)
}

// Get fetches a cached listing. Returns (nil, nil) on cache miss.
func (r *ListingCacheRepository) Get(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error) {
	key := listingKey(listingID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("listing cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var listing models.ListingDB
	if err := json.Unmarshal([]byte(val), &listing); err != nil {
		logger.Log.Errorw("listing cache decode failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("listing cache hit", "key", key)
	return &listing, nil
}

// Set caches a listing with the configured expiration.
func (r *ListingCacheRepository) Set(ctx context.Context, listing *models.ListingDB) error {
	key := listingKey(listing.ListingID)

	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("listing cache set",
		"key", key,
		"error", err,
	)

	return err
}

// Delete drops a listing from the cache. Used to invalidate on mutation.
func (r *ListingCacheRepository) Delete(ctx context.Context, listingID uuid.UUID) error {
	key := listingKey(listingID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("listing cache delete",
		"key", key,
		"error", err,
	)

	return err
}
