package usecase

import (
	"context"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

type ListListingsOutput struct {
	Items []*entity.Listing `json:"items"`
	Total int               `json:"total"`
}

type ListListingsUseCase struct {
	Listings ListingRepositoryInterface
}

func NewListListingsUseCase(listings ListingRepositoryInterface) *ListListingsUseCase {
	return &ListListingsUseCase{Listings: listings}
}

// Execute lists listings under the visibility rule: anyone sees
// published listings, owners additionally see their own in any status,
// admins see everything.
func (uc *ListListingsUseCase) Execute(ctx context.Context, f ListingFilter, actor ActorContext) (*ListListingsOutput, error) {
	f.ViewerID = actor.UserID
	f.ViewerIsAdmin = actor.IsAdmin
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	items, total, err := uc.Listings.List(ctx, f)
	if err != nil {
		return nil, storageError("list listings", err)
	}
	return &ListListingsOutput{Items: items, Total: total}, nil
}

type GetListingUseCase struct {
	Listings ListingRepositoryInterface
}

func NewGetListingUseCase(listings ListingRepositoryInterface) *GetListingUseCase {
	return &GetListingUseCase{Listings: listings}
}

// Execute fetches one listing. A non-published listing is reported as
// not found to everyone but its owner and staff, so its existence does
// not leak.
func (uc *GetListingUseCase) Execute(ctx context.Context, id string, actor ActorContext) (*entity.Listing, error) {
	l, err := uc.Listings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage("listing", err)
	}
	if l.Status != entity.StatusPublished && !actor.CanManage(l) {
		return nil, &NotFoundError{Resource: "listing", ID: id}
	}
	return l, nil
}
