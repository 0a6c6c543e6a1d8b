package usecase

import (
	"context"
	"time"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

type AdvanceInterestUseCase struct {
	Interests InterestRepositoryInterface
	Listings  ListingRepositoryInterface
}

func NewAdvanceInterestUseCase(
	interests InterestRepositoryInterface,
	listings ListingRepositoryInterface,
) *AdvanceInterestUseCase {
	return &AdvanceInterestUseCase{Interests: interests, Listings: listings}
}

// Execute moves a lead to any funnel position, forward or backward —
// the NEW -> IN_CONTACT -> PROPOSAL_SENT -> WON/LOST order is advice
// for the UI, not a state machine. Only the listing owner or an admin
// may touch a lead; leads orphaned by a deleted listing stay
// admin-only.
func (uc *AdvanceInterestUseCase) Execute(ctx context.Context, id string, newStatus entity.InterestStatus, actor ActorContext) (*entity.Interest, error) {
	if _, err := entity.ParseInterestStatus(string(newStatus)); err != nil {
		return nil, ValidationErrors{{Field: "status", Message: "is not a known funnel status"}}
	}

	interest, err := uc.Interests.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage("interest", err)
	}

	l, err := uc.Listings.FindByID(ctx, interest.ListingID)
	switch {
	case err == nil:
		if !actor.CanManage(l) {
			return nil, errNotOwner()
		}
	case IsNotFound(err):
		if !actor.IsAdmin {
			return nil, errNotOwner()
		}
	default:
		return nil, storageError("find listing", err)
	}

	// The repository writes the same timestamp we hand back, so the
	// response never disagrees with the stored row.
	now := time.Now()
	if err := uc.Interests.UpdateStatus(ctx, interest.ID, newStatus, now); err != nil {
		return nil, storageError("advance interest", err)
	}

	interest.Status = newStatus
	interest.UpdatedAt = now
	return interest, nil
}
