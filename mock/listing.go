package mock

import (
	"context"

	"github.com/fwojciec/adscout"
)

var _ adscout.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of adscout.ListingService.
type ListingService struct {
	SaveListingFn      func(ctx context.Context, listing *adscout.Listing) (int, error)
	FindListingByURLFn func(ctx context.Context, url string) (*adscout.Listing, error)
	FindListingsFn     func(ctx context.Context, filter adscout.ListingFilter) ([]*adscout.Listing, error)
	StatsFn            func(ctx context.Context) (*adscout.Stats, error)
	ClearListingsFn    func(ctx context.Context) error
}

func (s *ListingService) SaveListing(ctx context.Context, listing *adscout.Listing) (int, error) {
	return s.SaveListingFn(ctx, listing)
}

func (s *ListingService) FindListingByURL(ctx context.Context, url string) (*adscout.Listing, error) {
	return s.FindListingByURLFn(ctx, url)
}

func (s *ListingService) FindListings(ctx context.Context, filter adscout.ListingFilter) ([]*adscout.Listing, error) {
	return s.FindListingsFn(ctx, filter)
}

func (s *ListingService) Stats(ctx context.Context) (*adscout.Stats, error) {
	return s.StatsFn(ctx)
}

func (s *ListingService) ClearListings(ctx context.Context) error {
	return s.ClearListingsFn(ctx)
}
