package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/adscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ adscout.ListingService = (*ListingService)(nil)

// ListingService implements adscout.ListingService using SQLite.
type ListingService struct {
	db *DB
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db}
}

const listingColumns = "id, url, platform, title, price, description, location, category, images, bike, is_bike_listing, content_hash, captured_at"

// SaveListing inserts a listing or replaces the stored listing with the same
// URL and platform, keeping its ID. Returns the total number of listings.
func (s *ListingService) SaveListing(ctx context.Context, l *adscout.Listing) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}

	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	l.ContentHash = l.Hash()

	images, err := encodeImages(l.Images)
	if err != nil {
		return 0, err
	}
	bike, err := encodeBike(l.Bike)
	if err != nil {
		return 0, err
	}

	var id string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO listings (`+listingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (url, platform) DO UPDATE SET
			title = excluded.title,
			price = excluded.price,
			description = excluded.description,
			location = excluded.location,
			category = excluded.category,
			images = excluded.images,
			bike = excluded.bike,
			is_bike_listing = excluded.is_bike_listing,
			content_hash = excluded.content_hash,
			captured_at = excluded.captured_at
		RETURNING id
	`, uuid.New().String(), l.URL, string(l.Platform), l.Title, l.Price, l.Description, l.Location,
		l.Category, images, bike, l.IsBikeListing, l.ContentHash, formatTime(l.Timestamp)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save listing: %w", err)
	}
	l.ID = id

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM listings").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return total, nil
}

// FindListingByURL retrieves the most recently captured listing for a URL.
func (s *ListingService) FindListingByURL(ctx context.Context, url string) (*adscout.Listing, error) {
	listings, err := s.FindListings(ctx, adscout.ListingFilter{URL: &url, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, adscout.Errorf(adscout.ENOTFOUND, "listing not found")
	}
	return listings[0], nil
}

// FindListings retrieves listings matching the filter, newest first.
func (s *ListingService) FindListings(ctx context.Context, filter adscout.ListingFilter) ([]*adscout.Listing, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + listingColumns + " FROM listings WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Platform != nil {
		query.WriteString(" AND platform = ?")
		args = append(args, string(*filter.Platform))
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}

	query.WriteString(" ORDER BY captured_at DESC, rowid DESC")

	// SQLite requires LIMIT whenever OFFSET is used.
	limit := filter.Limit
	if limit <= 0 && filter.Offset > 0 {
		limit = -1
	}
	if limit != 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []*adscout.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// Stats returns the total number of listings and the count per domain.
func (s *ListingService) Stats(ctx context.Context) (*adscout.Stats, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT url FROM listings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*adscout.Listing
	for rows.Next() {
		var l adscout.Listing
		if err := rows.Scan(&l.URL); err != nil {
			return nil, err
		}
		listings = append(listings, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return adscout.NewStats(listings), nil
}

// ClearListings permanently removes all listings.
func (s *ListingService) ClearListings(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM listings")
	return err
}

// scanListing reads a row selected with listingColumns.
func scanListing(rows *sql.Rows) (*adscout.Listing, error) {
	var l adscout.Listing
	var platform, images, capturedAt string
	var bike sql.NullString

	if err := rows.Scan(&l.ID, &l.URL, &platform, &l.Title, &l.Price, &l.Description, &l.Location,
		&l.Category, &images, &bike, &l.IsBikeListing, &l.ContentHash, &capturedAt); err != nil {
		return nil, err
	}
	l.Platform = adscout.Platform(platform)

	var err error
	if l.Images, err = decodeImages(images); err != nil {
		return nil, err
	}
	if l.Bike, err = decodeBike(bike); err != nil {
		return nil, err
	}
	if l.Timestamp, err = parseTime(capturedAt, "captured_at"); err != nil {
		return nil, err
	}
	return &l, nil
}
