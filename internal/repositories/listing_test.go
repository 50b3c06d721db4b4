package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func seedUser(t *testing.T, db *sqlx.DB, email string) uuid.UUID {
	userID, err := NewUserWriteRepository(db).Save(context.Background(), "Test", "User", email, "0555", "$2a$10$hash")
	assert.NoError(t, err)
	return userID
}

func seedListing(t *testing.T, db *sqlx.DB, ownerID uuid.UUID, title, category, location, status string, createdAt time.Time) uuid.UUID {
	listingID := uuid.New()
	_, err := db.Exec(
		`INSERT INTO listings (listing_id, owner_id, title, description, price, category, images, location, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		listingID, ownerID, title, "açıklama", 100.0, category, `["a.jpg"]`, location, status, createdAt,
	)
	assert.NoError(t, err)
	return listingID
}

func TestListingRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewListingReadRepository(db)
	writeRepo := NewListingWriteRepository(db)

	ownerID := seedUser(t, db, "owner@example.com")
	otherID := seedUser(t, db, "other@example.com")

	t.Run("Save and GetByID round trip", func(t *testing.T) {
		listing := &models.ListingDB{
			ListingID:   uuid.New(),
			OwnerID:     ownerID,
			Title:       "Satılık bisiklet",
			Description: "Az kullanılmış",
			Price:       1500,
			Category:    models.CategoryOther,
			Images:      models.StringSlice{"bike1.jpg", "bike2.jpg"},
			Location:    "İzmir",
			Status:      models.StatusActive,
		}
		assert.NoError(t, writeRepo.Save(ctx, listing))
		assert.False(t, listing.CreatedAt.IsZero())
		assert.False(t, listing.UpdatedAt.IsZero())

		got, err := readRepo.GetByID(ctx, listing.ListingID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Satılık bisiklet", got.Title)
		assert.Equal(t, models.StringSlice{"bike1.jpg", "bike2.jpg"}, got.Images)

		// the timestamps handed back by Save are the persisted ones
		assert.True(t, got.CreatedAt.Equal(listing.CreatedAt))
		assert.True(t, got.UpdatedAt.Equal(listing.UpdatedAt))
	})

	t.Run("GetByID for unknown id returns nil without error", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetByIDForOwner hides foreign listings", func(t *testing.T) {
		listingID := seedListing(t, db, ownerID, "Sahibinden", models.CategoryVehicle, "Ankara", models.StatusActive, time.Now())

		got, err := readRepo.GetByIDForOwner(ctx, listingID, ownerID)
		assert.NoError(t, err)
		assert.NotNil(t, got)

		got, err = readRepo.GetByIDForOwner(ctx, listingID, otherID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Update is owner-scoped", func(t *testing.T) {
		listingID := seedListing(t, db, ownerID, "Eski başlık", models.CategoryElectronics, "Bursa", models.StatusActive, time.Now())

		listing, err := readRepo.GetByIDForOwner(ctx, listingID, ownerID)
		assert.NoError(t, err)

		listing.Title = "Yeni başlık"
		listing.Status = models.StatusSold
		assert.NoError(t, writeRepo.Update(ctx, listing))

		got, err := readRepo.GetByID(ctx, listingID)
		assert.NoError(t, err)
		assert.Equal(t, "Yeni başlık", got.Title)
		assert.Equal(t, models.StatusSold, got.Status)
		assert.True(t, got.UpdatedAt.Equal(listing.UpdatedAt))

		// the same update under another owner touches nothing
		listing.OwnerID = otherID
		listing.Title = "Kaçak güncelleme"
		assert.ErrorIs(t, writeRepo.Update(ctx, listing), sql.ErrNoRows)
	})

	t.Run("Delete is owner-scoped", func(t *testing.T) {
		listingID := seedListing(t, db, ownerID, "Silinecek", models.CategoryOther, "Adana", models.StatusActive, time.Now())

		assert.ErrorIs(t, writeRepo.Delete(ctx, listingID, otherID), sql.ErrNoRows)
		assert.NoError(t, writeRepo.Delete(ctx, listingID, ownerID))

		got, err := readRepo.GetByID(ctx, listingID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestListingRepository_OwnerListingsOrder(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewListingReadRepository(db)

	ownerID := seedUser(t, db, "sirali@example.com")
	base := time.Now().Add(-time.Hour)
	seedListing(t, db, ownerID, "Birinci", models.CategoryOther, "X", models.StatusActive, base)
	seedListing(t, db, ownerID, "İkinci", models.CategoryOther, "X", models.StatusActive, base.Add(time.Minute))
	seedListing(t, db, ownerID, "Üçüncü", models.CategoryOther, "X", models.StatusActive, base.Add(2*time.Minute))

	insertion, err := readRepo.GetByOwnerID(ctx, ownerID, false)
	assert.NoError(t, err)
	assert.Len(t, insertion, 3)
	assert.Equal(t, "Birinci", insertion[0].Title)
	assert.Equal(t, "Üçüncü", insertion[2].Title)

	newest, err := readRepo.GetByOwnerID(ctx, ownerID, true)
	assert.NoError(t, err)
	assert.Len(t, newest, 3)
	assert.Equal(t, "Üçüncü", newest[0].Title)
	assert.Equal(t, "Birinci", newest[2].Title)
}

func TestListingRepository_Search(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewListingReadRepository(db)

	ownerID := seedUser(t, db, "arama@example.com")
	base := time.Now().Add(-time.Hour)
	seedListing(t, db, ownerID, "Satılık araba", models.CategoryVehicle, "Istanbul", models.StatusActive, base)
	seedListing(t, db, ownerID, "Kiralık daire", models.CategoryRealEstate, "Ankara", models.StatusActive, base.Add(time.Minute))
	seedListing(t, db, ownerID, "Telefon", models.CategoryElectronics, "İzmir", models.StatusSold, base.Add(2*time.Minute))
	seedListing(t, db, ownerID, "Koltuk takımı", models.CategoryHousehold, "istanbul kadıköy", models.StatusActive, base.Add(3*time.Minute))
	seedListing(t, db, ownerID, "Araba kiralama ofisi devren", models.CategoryRealEstate, "Antalya", models.StatusActive, base.Add(4*time.Minute))

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		listings, total, err := readRepo.Search(ctx, models.ListingFilter{ShowSold: true}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, listings, 5)
		assert.Equal(t, "Araba kiralama ofisi devren", listings[0].Title)
	})

	t.Run("free text matches title, description and location case-insensitively", func(t *testing.T) {
		listings, total, err := readRepo.Search(ctx, models.ListingFilter{Search: "istanbul", ShowSold: true}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, listings, 2)
	})

	t.Run("category is an exact filter", func(t *testing.T) {
		listings, total, err := readRepo.Search(ctx, models.ListingFilter{Category: models.CategoryVehicle, ShowSold: true}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Satılık araba", listings[0].Title)
	})

	t.Run("search and category compose as an intersection", func(t *testing.T) {
		// two rows match the text, one per category
		listings, total, err := readRepo.Search(ctx, models.ListingFilter{Search: "araba", ShowSold: true}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, listings, 2)

		listings, total, err = readRepo.Search(ctx, models.ListingFilter{Search: "araba", Category: models.CategoryVehicle, ShowSold: true}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, listings, 1)
		assert.Equal(t, "Satılık araba", listings[0].Title)
	})

	t.Run("sold listings can be hidden", func(t *testing.T) {
		_, total, err := readRepo.Search(ctx, models.ListingFilter{ShowSold: false}, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})

	t.Run("pagination slices the result but keeps the full count", func(t *testing.T) {
		page1, total, err := readRepo.Search(ctx, models.ListingFilter{ShowSold: true}, 3, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, page1, 3)

		page2, total, err := readRepo.Search(ctx, models.ListingFilter{ShowSold: true}, 3, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Len(t, page2, 2)
		assert.Equal(t, "Satılık araba", page2[1].Title)
	})

	t.Run("out-of-range page is empty", func(t *testing.T) {
		listings, total, err := readRepo.Search(ctx, models.ListingFilter{ShowSold: true}, 10, 100)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Empty(t, listings)
	})
}
