package usecase

import (
	"context"
	"time"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

type ReopenListingUseCase struct {
	Listings ListingRepositoryInterface
}

func NewReopenListingUseCase(listings ListingRepositoryInterface) *ReopenListingUseCase {
	return &ReopenListingUseCase{Listings: listings}
}

// Execute is the staff out-of-band path: a rejected listing goes back
// to DRAFT (seller reworks it) or straight to SUBMITTED (rejection was
// a mistake). Admin only.
func (uc *ReopenListingUseCase) Execute(ctx context.Context, id string, target entity.ListingStatus, actor ActorContext) (*entity.Listing, error) {
	if !actor.IsAdmin {
		return nil, errNotAdmin()
	}
	if target != entity.StatusDraft && target != entity.StatusSubmitted {
		return nil, ValidationErrors{{Field: "target", Message: "must be DRAFT or SUBMITTED"}}
	}

	l, err := uc.Listings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage("listing", err)
	}
	if l.Status != entity.StatusRejected {
		return nil, &ConflictError{Resource: "listing", Reason: "only a rejected listing can be reopened"}
	}

	l.Status = target
	l.ModerationComment = ""
	l.ModerationSuggestedMin = nil
	l.ModerationSuggestedMax = nil
	l.UpdatedAt = time.Now()

	if err := uc.Listings.Update(ctx, l); err != nil {
		return nil, storageError("reopen listing", err)
	}
	return l, nil
}
