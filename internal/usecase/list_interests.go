package usecase

import (
	"context"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

type ListInterestsOutput struct {
	Items []*entity.Interest `json:"items"`
	Total int                `json:"total"`
}

type ListInterestsUseCase struct {
	Interests InterestRepositoryInterface
	Listings  ListingRepositoryInterface
}

func NewListInterestsUseCase(
	interests InterestRepositoryInterface,
	listings ListingRepositoryInterface,
) *ListInterestsUseCase {
	return &ListInterestsUseCase{Interests: interests, Listings: listings}
}

// Execute lists interests newest-first, scoped to what the actor may
// see: admins see all, owners see interests against their own
// listings, everyone else sees nothing.
func (uc *ListInterestsUseCase) Execute(ctx context.Context, f InterestFilter, actor ActorContext) (*ListInterestsOutput, error) {
	if !actor.Authenticated() {
		return nil, errNotOwner()
	}

	if f.ListingID != "" {
		l, err := uc.Listings.FindByID(ctx, f.ListingID)
		if err != nil {
			return nil, notFoundOrStorage("listing", err)
		}
		if !actor.CanManage(l) {
			return nil, errNotOwner()
		}
	} else if !actor.IsAdmin {
		f.OwnerScopeID = actor.UserID
	}

	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	items, total, err := uc.Interests.List(ctx, f)
	if err != nil {
		return nil, storageError("list interests", err)
	}
	return &ListInterestsOutput{Items: items, Total: total}, nil
}
