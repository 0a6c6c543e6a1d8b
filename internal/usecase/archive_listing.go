package usecase

import (
	"context"
	"time"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

type ArchiveListingUseCase struct {
	Listings ListingRepositoryInterface
}

func NewArchiveListingUseCase(listings ListingRepositoryInterface) *ArchiveListingUseCase {
	return &ArchiveListingUseCase{Listings: listings}
}

// Execute takes a published listing off the market. Archived is
// terminal for buyer-facing visibility.
func (uc *ArchiveListingUseCase) Execute(ctx context.Context, id string, actor ActorContext) (*entity.Listing, error) {
	l, err := uc.Listings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage("listing", err)
	}
	if !actor.CanManage(l) {
		return nil, errNotOwner()
	}
	if l.Status != entity.StatusPublished {
		return nil, &ConflictError{Resource: "listing", Reason: "only a published listing can be archived"}
	}

	l.Status = entity.StatusArchived
	l.UpdatedAt = time.Now()

	if err := uc.Listings.Update(ctx, l); err != nil {
		return nil, storageError("archive listing", err)
	}
	return l, nil
}
