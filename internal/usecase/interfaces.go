package usecase

import (
	"context"
	"time"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/queue"
)

// ListingFilter narrows a listing query. Viewer fields drive the
// visibility clause: non-published listings only show up for their
// owner or an admin.
type ListingFilter struct {
	Status   *entity.ListingStatus
	Category *entity.Category
	OwnerID  string

	ViewerID      string
	ViewerIsAdmin bool

	Limit  int
	Offset int
}

type ListingRepositoryInterface interface {
	Create(ctx context.Context, l *entity.Listing) error
	FindByID(ctx context.Context, id string) (*entity.Listing, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	// Update rewrites the whole row, derived fields included, as one
	// statement so a reader never sees status and advisory fields from
	// different snapshots.
	Update(ctx context.Context, l *entity.Listing) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListingFilter) ([]*entity.Listing, int, error)
}

// InterestFilter narrows an interest query. OwnerScopeID restricts the
// result to interests whose listing belongs to that user.
type InterestFilter struct {
	ListingID    string
	Status       *entity.InterestStatus
	OwnerScopeID string

	Limit  int
	Offset int
}

type InterestRepositoryInterface interface {
	Create(ctx context.Context, i *entity.Interest) error
	FindByID(ctx context.Context, id string) (*entity.Interest, error)
	UpdateStatus(ctx context.Context, id string, status entity.InterestStatus, updatedAt time.Time) error
	List(ctx context.Context, f InterestFilter) ([]*entity.Interest, int, error)
}

// FinancialHistoryRepositoryInterface keeps the trail of snapshots a
// listing went through; rows are listing-owned and die with it.
type FinancialHistoryRepositoryInterface interface {
	Append(ctx context.Context, listingID string, snap entity.FinancialSnapshot) error
	DeleteByListing(ctx context.Context, listingID string) (int64, error)
}

// EventPublisherInterface is the single outbound side-effect channel.
// Publishing is fire-and-forget from the caller's point of view;
// failures are logged in one place and never propagated.
type EventPublisherInterface interface {
	Publish(ctx context.Context, evt queue.Event) error
}
