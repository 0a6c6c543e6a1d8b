package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/queue"
)

type SubmitInterestInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	BuyerType   string `json:"buyer_type"`
	BudgetRange string `json:"budget_range"`
	Message     string `json:"message"`
	Source      string `json:"source"`
}

type SubmitInterestUseCase struct {
	Interests InterestRepositoryInterface
	Listings  ListingRepositoryInterface
	Events    EventPublisherInterface
}

func NewSubmitInterestUseCase(
	interests InterestRepositoryInterface,
	listings ListingRepositoryInterface,
	events EventPublisherInterface,
) *SubmitInterestUseCase {
	return &SubmitInterestUseCase{Interests: interests, Listings: listings, Events: events}
}

// Execute records a buyer inquiry. Anonymous callers are fine; the
// only gate is that the listing is live right now. Duplicate
// submissions from the same buyer are accepted as separate records.
func (uc *SubmitInterestUseCase) Execute(ctx context.Context, listingID string, input SubmitInterestInput) (*entity.Interest, error) {
	if errs := ValidateSubmitInterestInput(input); len(errs) > 0 {
		return nil, errs
	}

	l, err := uc.Listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, notFoundOrStorage("listing", err)
	}
	if l.Status != entity.StatusPublished {
		// Non-published listings are invisible to buyers.
		return nil, &NotFoundError{Resource: "listing", ID: listingID}
	}

	buyerType := entity.BuyerOther
	if strings.TrimSpace(input.BuyerType) != "" {
		buyerType, _ = entity.ParseBuyerType(input.BuyerType)
	}

	interest := entity.NewInterest(
		l.ID,
		strings.TrimSpace(input.Name),
		normalizeEmail(input.Email),
		buyerType,
		strings.TrimSpace(input.Message),
	)
	interest.BudgetRange = strings.TrimSpace(input.BudgetRange)
	interest.Source = strings.TrimSpace(input.Source)

	if err := uc.Interests.Create(ctx, interest); err != nil {
		return nil, storageError("create interest", err)
	}

	publishEvent(uc.Events, queue.Event{
		Kind:         queue.EventNewInterest,
		OccurredAt:   time.Now(),
		ListingID:    l.ID,
		ListingTitle: l.Title,
		OwnerID:      l.OwnerID,
		OwnerEmail:   l.ContactEmail,
		InterestID:   interest.ID,
		BuyerName:    interest.Name,
		BuyerEmail:   interest.Email,
	})

	return interest, nil
}
