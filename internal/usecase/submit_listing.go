package usecase

import (
	"context"
	"time"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/queue"
)

type SubmitListingUseCase struct {
	Listings ListingRepositoryInterface
	Events   EventPublisherInterface
}

func NewSubmitListingUseCase(listings ListingRepositoryInterface, events EventPublisherInterface) *SubmitListingUseCase {
	return &SubmitListingUseCase{Listings: listings, Events: events}
}

// Execute moves a draft into the moderation queue. Listings carrying a
// high-severity flag go to PENDING_REVIEW for closer staff scrutiny;
// the rest land in SUBMITTED.
func (uc *SubmitListingUseCase) Execute(ctx context.Context, id string, actor ActorContext) (*entity.Listing, error) {
	l, err := uc.Listings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage("listing", err)
	}
	if !actor.CanManage(l) {
		return nil, errNotOwner()
	}
	if l.Status != entity.StatusDraft {
		return nil, &ConflictError{Resource: "listing", Reason: "only a draft can be submitted"}
	}

	l.Status = entity.StatusSubmitted
	if hasHighSeverityFlag(l) {
		l.Status = entity.StatusPendingReview
	}
	l.UpdatedAt = time.Now()

	if err := uc.Listings.Update(ctx, l); err != nil {
		return nil, storageError("submit listing", err)
	}

	publishEvent(uc.Events, queue.Event{
		Kind:         queue.EventNewSubmission,
		OccurredAt:   time.Now(),
		ListingID:    l.ID,
		ListingTitle: l.Title,
		OwnerID:      l.OwnerID,
		OwnerEmail:   l.ContactEmail,
	})

	return l, nil
}

func hasHighSeverityFlag(l *entity.Listing) bool {
	for _, f := range l.Flags {
		if f.Severity == entity.SeverityHigh {
			return true
		}
	}
	return false
}
