package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/logger"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/jmoiron/sqlx"
)

const listingColumns = `listing_id, owner_id, title, description, price, category, images, location, status, created_at, updated_at`

type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

// GetByID returns (nil, nil) when no listing with that id exists.
func (r *ListingReadRepository) GetByID(ctx context.Context, listingID uuid.UUID) (*models.ListingDB, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1`

	var listing models.ListingDB
	err := r.db.GetContext(ctx, &listing, query, listingID)

	logger.Log.Infow("listing query",
		"query", query,
		"args", []any{listingID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// GetByIDForOwner returns the listing only when it exists AND belongs to
// ownerID; absence and ownership mismatch are indistinguishable.
func (r *ListingReadRepository) GetByIDForOwner(ctx context.Context, listingID, ownerID uuid.UUID) (*models.ListingDB, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE listing_id = $1 AND owner_id = $2`

	var listing models.ListingDB
	err := r.db.GetContext(ctx, &listing, query, listingID, ownerID)

	logger.Log.Infow("listing query",
		"query", query,
		"args", []any{listingID, ownerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

// GetByOwnerID returns all listings of one owner. Insertion order by
// default; newestFirst flips to creation-time descending.
func (r *ListingReadRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID, newestFirst bool) ([]models.ListingDB, error) {
	order := "ASC"
	if newestFirst {
		order = "DESC"
	}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE owner_id = $1 ORDER BY created_at ` + order

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query, ownerID)

	logger.Log.Infow("listing query",
		"query", query,
		"args", []any{ownerID},
		"result", len(listings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return listings, nil
}

// Search runs the filtered public query and returns one page of listings
// plus the total match count, newest first.
func (r *ListingReadRepository) Search(ctx context.Context, filter models.ListingFilter, limit, offset int) ([]models.ListingDB, int64, error) {
	where := []string{"TRUE"}
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d)", n, n, n))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if !filter.ShowSold {
		args = append(args, models.StatusSold)
		where = append(where, fmt.Sprintf("status <> $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(*) FROM listings WHERE ` + cond
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Errorw("listing count failed", "query", countQuery, "args", args, "error", err)
		return nil, 0, err
	}

	pageArgs := append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM listings WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		listingColumns, cond, len(pageArgs)-1, len(pageArgs),
	)

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query, pageArgs...)

	logger.Log.Infow("listing search",
		"query", query,
		"args", pageArgs,
		"total", total,
		"result", len(listings),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

type ListingWriteRepository struct {
	db *sqlx.DB
}

func NewListingWriteRepository(db *sqlx.DB) *ListingWriteRepository {
	return &ListingWriteRepository{db: db}
}

// Save inserts a new listing and fills in the database-stamped
// created_at/updated_at.
func (r *ListingWriteRepository) Save(ctx context.Context, l *models.ListingDB) error {
	const query = `
		INSERT INTO listings (listing_id, owner_id, title, description, price, category, images, location, status, created_at, updated_at)
		VALUES (:listing_id, :owner_id, :title, :description, :price, :category, :images, :location, :status, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, l)

	logger.Log.Infow("listing insert",
		"query", strings.Join(strings.Fields(query), " "),
		"listing_id", l.ListingID,
		"owner_id", l.OwnerID,
		"error", err,
	)

	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&l.CreatedAt, &l.UpdatedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Update rewrites a listing's mutable fields, owner-scoped, and fills in
// the refreshed updated_at. Returns sql.ErrNoRows when the listing is
// absent or owned by another user.
func (r *ListingWriteRepository) Update(ctx context.Context, l *models.ListingDB) error {
	const query = `
		UPDATE listings
		SET title = :title,
		    description = :description,
		    price = :price,
		    category = :category,
		    images = :images,
		    location = :location,
		    status = :status,
		    updated_at = NOW()
		WHERE listing_id = :listing_id AND owner_id = :owner_id
		RETURNING updated_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, l)

	logger.Log.Infow("listing update",
		"query", strings.Join(strings.Fields(query), " "),
		"listing_id", l.ListingID,
		"owner_id", l.OwnerID,
		"error", err,
	)

	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	return rows.Scan(&l.UpdatedAt)
}

// Delete removes a listing, owner-scoped, with the same not-found
// conflation as Update.
func (r *ListingWriteRepository) Delete(ctx context.Context, listingID, ownerID uuid.UUID) error {
	const query = `DELETE FROM listings WHERE listing_id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, listingID, ownerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("listing delete",
		"query", query,
		"args", []any{listingID, ownerID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
