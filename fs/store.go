// Package fs provides file-based storage for listings.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fwojciec/adscout"
	"github.com/google/uuid"
)

// DefaultNamespace is the collection name used when none is given.
const DefaultNamespace = "bikeAds"

// Ensure Store implements adscout.ListingService at compile time.
var _ adscout.ListingService = (*Store)(nil)

// collection is the on-disk layout: one namespaced map of listings keyed
// by platform and URL.
type collection struct {
	Namespace string                      `json:"namespace"`
	Listings  map[string]*adscout.Listing `json:"listings"`
}

// Store implements adscout.ListingService as a single JSON file.
// Every write replaces the file atomically by writing a temporary file in
// the same directory and renaming it over the original.
type Store struct {
	mu        sync.Mutex
	path      string
	namespace string
}

// NewStore creates a Store backed by the file at path. An empty namespace
// selects DefaultNamespace. The file is created on first write.
func NewStore(path, namespace string) *Store {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Store{path: path, namespace: namespace}
}

// Path returns the location of the collection file.
func (s *Store) Path() string {
	return s.path
}

// SaveListing inserts a listing or replaces the stored listing with the same
// key, keeping its ID. Returns the total number of listings.
func (s *Store) SaveListing(ctx context.Context, l *adscout.Listing) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load()
	if err != nil {
		return 0, err
	}

	if existing, ok := c.Listings[l.Key()]; ok {
		l.ID = existing.ID
	} else {
		l.ID = uuid.New().String()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	l.ContentHash = l.Hash()

	stored := *l
	c.Listings[l.Key()] = &stored

	if err := s.write(c); err != nil {
		return 0, err
	}
	return len(c.Listings), nil
}

// FindListingByURL retrieves the most recently captured listing for a URL.
func (s *Store) FindListingByURL(ctx context.Context, url string) (*adscout.Listing, error) {
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
func (s *Store) FindListings(ctx context.Context, filter adscout.ListingFilter) ([]*adscout.Listing, error) {
	s.mu.Lock()
	c, err := s.load()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	listings := []*adscout.Listing{}
	for _, l := range c.Listings {
		if filter.Match(l) {
			listings = append(listings, l)
		}
	}

	sort.Slice(listings, func(i, j int) bool {
		if !listings[i].Timestamp.Equal(listings[j].Timestamp) {
			return listings[i].Timestamp.After(listings[j].Timestamp)
		}
		return listings[i].Key() < listings[j].Key()
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(listings) {
			return []*adscout.Listing{}, nil
		}
		listings = listings[filter.Offset:]
	}
	if filter.Limit > 0 && len(listings) > filter.Limit {
		listings = listings[:filter.Limit]
	}
	return listings, nil
}

// Stats returns the total number of listings and the count per domain.
func (s *Store) Stats(ctx context.Context) (*adscout.Stats, error) {
	listings, err := s.FindListings(ctx, adscout.ListingFilter{})
	if err != nil {
		return nil, err
	}
	return adscout.NewStats(listings), nil
}

// ClearListings permanently removes all listings.
func (s *Store) ClearListings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(&collection{Namespace: s.namespace, Listings: map[string]*adscout.Listing{}})
}

// load reads the collection from disk. A missing file is an empty collection.
func (s *Store) load() (*collection, error) {
	c := &collection{Namespace: s.namespace, Listings: map[string]*adscout.Listing{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to decode store %s: %w", s.path, err)
	}
	if c.Namespace != s.namespace {
		return nil, adscout.Errorf(adscout.ECONFLICT, "store %s holds namespace %q, not %q", s.path, c.Namespace, s.namespace)
	}
	if c.Listings == nil {
		c.Listings = map[string]*adscout.Listing{}
	}
	return c, nil
}

// write atomically replaces the store file with c.
func (s *Store) write(c *collection) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
