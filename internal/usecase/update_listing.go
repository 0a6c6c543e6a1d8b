package usecase

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

// UpdateListingInput is a partial field set. A zero Patch leaves the
// field untouched; a Set patch with a nil value clears it. Status is
// deliberately absent: updates never transition.
type UpdateListingInput struct {
	Title        Patch[string] `json:"title"`
	Description  Patch[string] `json:"description"`
	Category     Patch[string] `json:"category"`
	ContactEmail Patch[string] `json:"contact_email"`

	MonthlyRevenue  Patch[float64] `json:"monthly_revenue"`
	MonthlyProfit   Patch[float64] `json:"monthly_profit"`
	MRR             Patch[float64] `json:"mrr"`
	ARR             Patch[float64] `json:"arr"`
	ChurnRate       Patch[float64] `json:"churn_rate"`
	CAC             Patch[float64] `json:"cac"`
	LTV             Patch[float64] `json:"ltv"`
	AskingPrice     Patch[float64] `json:"asking_price"`
	Currency        Patch[string]  `json:"currency"`
	MonthlyVisitors Patch[int64]   `json:"monthly_visitors"`

	MediaCount Patch[int] `json:"media_count"`
}

type UpdateListingUseCase struct {
	Listings ListingRepositoryInterface
	History  FinancialHistoryRepositoryInterface
}

func NewUpdateListingUseCase(
	listings ListingRepositoryInterface,
	history FinancialHistoryRepositoryInterface,
) *UpdateListingUseCase {
	return &UpdateListingUseCase{Listings: listings, History: history}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, id string, input UpdateListingInput, actor ActorContext) (*entity.Listing, error) {
	l, err := uc.Listings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrStorage("listing", err)
	}
	if !actor.CanManage(l) {
		return nil, errNotOwner()
	}

	if errs := uc.validate(l, input); len(errs) > 0 {
		return nil, errs
	}

	applyValue(&l.Title, trimPatch(input.Title))
	applyValue(&l.Description, trimPatch(input.Description))
	applyValue(&l.ContactEmail, emailPatch(input.ContactEmail))

	financialChanged := false
	if input.Category.Set && input.Category.Value != nil {
		c, _ := entity.ParseCategory(*input.Category.Value)
		if c != l.Category {
			l.Category = c
			financialChanged = true
		}
	}
	financialChanged = applyOptional(&l.Financials.MonthlyRevenue, input.MonthlyRevenue) || financialChanged
	financialChanged = applyOptional(&l.Financials.MonthlyProfit, input.MonthlyProfit) || financialChanged
	financialChanged = applyOptional(&l.Financials.MRR, input.MRR) || financialChanged
	financialChanged = applyOptional(&l.Financials.ARR, input.ARR) || financialChanged
	financialChanged = applyOptional(&l.Financials.ChurnRate, input.ChurnRate) || financialChanged
	financialChanged = applyOptional(&l.Financials.CAC, input.CAC) || financialChanged
	financialChanged = applyOptional(&l.Financials.LTV, input.LTV) || financialChanged
	financialChanged = applyOptional(&l.Financials.AskingPrice, input.AskingPrice) || financialChanged
	financialChanged = applyValue(&l.Financials.Currency, input.Currency) || financialChanged
	financialChanged = applyOptional(&l.Financials.MonthlyVisitors, input.MonthlyVisitors) || financialChanged

	mediaChanged := applyValue(&l.MediaCount, input.MediaCount)

	// The advisory fields must never lag the snapshot they were
	// computed from, so the recompute happens before the single-row
	// write that carries both.
	switch {
	case financialChanged:
		recomputeAdvisory(l)
	case mediaChanged:
		reverify(l)
	}
	l.UpdatedAt = time.Now()

	if err := uc.Listings.Update(ctx, l); err != nil {
		return nil, storageError("update listing", err)
	}

	if financialChanged {
		if err := uc.History.Append(ctx, l.ID, l.Financials); err != nil {
			log.Printf("[listing] financial history append failed for %s (ignored): %s", l.ID, err)
		}
	}

	return l, nil
}

func (uc *UpdateListingUseCase) validate(l *entity.Listing, input UpdateListingInput) ValidationErrors {
	var errs ValidationErrors

	if input.Title.Set {
		if input.Title.Value == nil || utf8.RuneCountInString(strings.TrimSpace(*input.Title.Value)) < 3 {
			errs = append(errs, ValidationError{"title", "must have at least 3 characters"})
		}
	}
	if input.Category.Set {
		if input.Category.Value == nil {
			errs = append(errs, ValidationError{"category", "cannot be cleared"})
		} else if _, err := entity.ParseCategory(*input.Category.Value); err != nil {
			errs = append(errs, ValidationError{"category", "is not a known category"})
		}
	}
	if input.ContactEmail.Set && input.ContactEmail.Value != nil {
		if e := strings.TrimSpace(*input.ContactEmail.Value); e != "" && !isValidEmail(e) {
			errs = append(errs, ValidationError{"contact_email", "is invalid"})
		}
	}
	if input.MediaCount.Set && input.MediaCount.Value != nil && *input.MediaCount.Value < 0 {
		errs = append(errs, ValidationError{"media_count", "must not be negative"})
	}

	snap := l.Financials
	patched := snap
	applyOptional(&patched.MonthlyRevenue, input.MonthlyRevenue)
	applyOptional(&patched.MonthlyProfit, input.MonthlyProfit)
	applyOptional(&patched.MRR, input.MRR)
	applyOptional(&patched.ARR, input.ARR)
	applyOptional(&patched.ChurnRate, input.ChurnRate)
	applyOptional(&patched.CAC, input.CAC)
	applyOptional(&patched.LTV, input.LTV)
	applyOptional(&patched.AskingPrice, input.AskingPrice)
	applyOptional(&patched.MonthlyVisitors, input.MonthlyVisitors)
	errs = append(errs, validateSnapshot(patched)...)

	return errs
}

func trimPatch(p Patch[string]) Patch[string] {
	if p.Set && p.Value != nil {
		trimmed := strings.TrimSpace(*p.Value)
		p.Value = &trimmed
	}
	return p
}

func emailPatch(p Patch[string]) Patch[string] {
	if p.Set && p.Value != nil {
		normalized := normalizeEmail(*p.Value)
		p.Value = &normalized
	}
	return p
}
