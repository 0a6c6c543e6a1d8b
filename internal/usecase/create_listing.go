package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

// slugRetryBudget bounds the collision loop. Practically unreachable;
// exhausting it is a ConflictError.
const slugRetryBudget = 50

type CreateListingInput struct {
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Category     string                   `json:"category"`
	ContactEmail string                   `json:"contact_email"`
	Financials   entity.FinancialSnapshot `json:"financials"`
	MediaCount   int                      `json:"media_count"`
}

type CreateListingUseCase struct {
	Listings ListingRepositoryInterface
	History  FinancialHistoryRepositoryInterface
}

func NewCreateListingUseCase(
	listings ListingRepositoryInterface,
	history FinancialHistoryRepositoryInterface,
) *CreateListingUseCase {
	return &CreateListingUseCase{Listings: listings, History: history}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, ownerID string, input CreateListingInput) (*entity.Listing, error) {
	if ownerID == "" {
		return nil, errNotOwner()
	}
	if errs := ValidateCreateListingInput(input); len(errs) > 0 {
		return nil, errs
	}

	category, _ := entity.ParseCategory(input.Category)

	l := entity.NewListing(ownerID, strings.TrimSpace(input.Title), category)
	l.Description = strings.TrimSpace(input.Description)
	l.ContactEmail = normalizeEmail(input.ContactEmail)
	l.Financials = input.Financials
	l.MediaCount = input.MediaCount

	slug, err := uc.uniqueSlug(ctx, l.Slug)
	if err != nil {
		return nil, err
	}
	l.Slug = slug

	recomputeAdvisory(l)

	if err := uc.Listings.Create(ctx, l); err != nil {
		return nil, storageError("create listing", err)
	}
	if err := uc.History.Append(ctx, l.ID, l.Financials); err != nil {
		// The listing row is the source of truth; the history trail is
		// best effort on create.
		log.Printf("[listing] financial history append failed for %s (ignored): %s", l.ID, err)
	}

	return l, nil
}

func (uc *CreateListingUseCase) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = "listing"
	}
	candidate := base
	for i := 2; i <= slugRetryBudget+1; i++ {
		taken, err := uc.Listings.SlugExists(ctx, candidate)
		if err != nil {
			return "", storageError("slug lookup", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", &ConflictError{Resource: "listing", Reason: "slug collision retry budget exhausted for " + base}
}
