package usecase

import (
	"context"
)

type DeleteListingUseCase struct {
	Listings ListingRepositoryInterface
	History  FinancialHistoryRepositoryInterface
}

func NewDeleteListingUseCase(
	listings ListingRepositoryInterface,
	history FinancialHistoryRepositoryInterface,
) *DeleteListingUseCase {
	return &DeleteListingUseCase{Listings: listings, History: history}
}

// Execute permanently removes a listing and everything it owns: the
// financial history trail and the listing row itself (flags, valuation
// and media count live on that row). Interests are NOT cascaded; they
// stay behind as historical records of buyer demand.
func (uc *DeleteListingUseCase) Execute(ctx context.Context, id string, actor ActorContext) error {
	l, err := uc.Listings.FindByID(ctx, id)
	if err != nil {
		return notFoundOrStorage("listing", err)
	}
	if !actor.CanManage(l) {
		return errNotOwner()
	}

	txn := NewTransaction()

	txn.AddOperation("delete_financial_history", func(ctx context.Context) error {
		_, err := uc.History.DeleteByListing(ctx, l.ID)
		return err
	})
	txn.AddCompensation("restore_financial_history", func(ctx context.Context) error {
		// Best effort: put the latest snapshot back so the trail is
		// not empty if the listing delete fails.
		return uc.History.Append(ctx, l.ID, l.Financials)
	})

	txn.AddOperation("delete_listing", func(ctx context.Context) error {
		return uc.Listings.Delete(ctx, l.ID)
	})

	if err := txn.Execute(ctx); err != nil {
		return storageError("delete listing", err)
	}
	return nil
}
