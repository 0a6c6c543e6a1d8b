package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/queue"
)

type ModerationAction string

const (
	ActionApprove ModerationAction = "APPROVE"
	ActionReject  ModerationAction = "REJECT"
)

// ModerateListingInput is the narrow admin contract: a verdict, an
// optional comment, and an optional staff-suggested price band kept
// separate from the engine-derived one.
type ModerateListingInput struct {
	Action       string   `json:"action"`
	Comment      string   `json:"comment"`
	SuggestedMin *float64 `json:"suggested_min"`
	SuggestedMax *float64 `json:"suggested_max"`
}

type ModerateListingUseCase struct {
	Listings ListingRepositoryInterface
	Events   EventPublisherInterface
}

func NewModerateListingUseCase(listings ListingRepositoryInterface, events EventPublisherInterface) *ModerateListingUseCase {
	return &ModerateListingUseCase{Listings: listings, Events: events}
}

func (uc *ModerateListingUseCase) Execute(ctx context.Context, id string, input ModerateListingInput, actor ActorContext) (*entity.Listing, error) {
	if !actor.IsAdmin {
		return nil, errNotAdmin()
	}

	action := ModerationAction(strings.ToUpper(strings.TrimSpace(input.Action)))
	if action != ActionApprove && action != ActionReject {
		return nil, ValidationErrors{{Field: "action", Message: "must be APPROVE or REJECT"}}
	}
	if input.SuggestedMin != nil && input.SuggestedMax != nil && *input.SuggestedMin > *input.SuggestedMax {
		return nil, ValidationErrors{{Field: "suggested_min", Message: "must not exceed suggested_max"}}
	}

	l, err := uc.Listings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage("listing", err)
	}
	if l.Status != entity.StatusSubmitted && l.Status != entity.StatusPendingReview {
		return nil, &ConflictError{Resource: "listing", Reason: "only submitted or pending-review listings can be moderated"}
	}

	now := time.Now()
	l.UpdatedAt = now

	switch action {
	case ActionApprove:
		l.Status = entity.StatusPublished
		l.PublishedAt = &now
		// Attachments may have changed while the listing sat in the
		// queue; the flag set must be honest when it goes public.
		reverify(l)
	case ActionReject:
		l.Status = entity.StatusRejected
		l.ModerationComment = strings.TrimSpace(input.Comment)
		l.ModerationSuggestedMin = input.SuggestedMin
		l.ModerationSuggestedMax = input.SuggestedMax
	}

	if err := uc.Listings.Update(ctx, l); err != nil {
		return nil, storageError("moderate listing", err)
	}

	evt := queue.Event{
		OccurredAt:   now,
		ListingID:    l.ID,
		ListingTitle: l.Title,
		OwnerID:      l.OwnerID,
		OwnerEmail:   l.ContactEmail,
	}
	if action == ActionApprove {
		evt.Kind = queue.EventListingPublished
	} else {
		evt.Kind = queue.EventListingRejected
		evt.Comment = l.ModerationComment
	}
	publishEvent(uc.Events, evt)

	return l, nil
}
