package verification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/verification"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

// cleanListing has no reason to be flagged.
func cleanListing() *entity.Listing {
	return &entity.Listing{
		Category:   entity.CategorySaaS,
		MediaCount: 3,
		Financials: entity.FinancialSnapshot{
			MonthlyRevenue: f64(5000),
			MonthlyProfit:  f64(2000),
			AskingPrice:    f64(50000),
		},
		SuggestedMinPrice: f64(40000),
		SuggestedMaxPrice: f64(80000),
	}
}

func codes(flags []entity.Flag) []string {
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.Code
	}
	return out
}

func TestInspectCleanListingHasNoFlags(t *testing.T) {
	assert.Empty(t, verification.Inspect(cleanListing()))
}

func TestInspectPriceFarAboveBand(t *testing.T) {
	l := cleanListing()
	l.Financials.AskingPrice = f64(500000)
	l.SuggestedMaxPrice = f64(100000)

	flags := verification.Inspect(l)

	assert.Contains(t, codes(flags), verification.CodePriceAboveBand)
	for _, f := range flags {
		if f.Code == verification.CodePriceAboveBand {
			assert.Equal(t, entity.SeverityMedium, f.Severity)
		}
	}
}

func TestInspectPriceAtTwiceMaxIsNotFlagged(t *testing.T) {
	l := cleanListing()
	l.Financials.AskingPrice = f64(160000)
	l.SuggestedMaxPrice = f64(80000)

	assert.NotContains(t, codes(verification.Inspect(l)), verification.CodePriceAboveBand)
}

func TestInspectPriceFarBelowBand(t *testing.T) {
	l := cleanListing()
	l.Financials.AskingPrice = f64(10000)
	l.SuggestedMinPrice = f64(40000)

	flags := verification.Inspect(l)

	assert.Contains(t, codes(flags), verification.CodePriceBelowBand)
	for _, f := range flags {
		if f.Code == verification.CodePriceBelowBand {
			assert.Equal(t, entity.SeverityLow, f.Severity)
		}
	}
}

func TestInspectTrafficRevenueMismatch(t *testing.T) {
	l := cleanListing()
	l.Financials.MonthlyVisitors = i64(500)
	l.Financials.MonthlyRevenue = f64(20000)

	flags := verification.Inspect(l)

	assert.Contains(t, codes(flags), verification.CodeTrafficMismatch)
	for _, f := range flags {
		if f.Code == verification.CodeTrafficMismatch {
			assert.Equal(t, entity.SeverityHigh, f.Severity)
		}
	}
}

func TestInspectMissingProof(t *testing.T) {
	l := cleanListing()
	l.MediaCount = 0

	flags := verification.Inspect(l)

	assert.Contains(t, codes(flags), verification.CodeMissingProof)
}

func TestInspectOtherCategoryLowSpecificity(t *testing.T) {
	l := cleanListing()
	l.Category = entity.CategoryOther

	assert.Contains(t, codes(verification.Inspect(l)), verification.CodeLowSpecificity)
}

func TestInspectMissingFinancialData(t *testing.T) {
	l := cleanListing()
	l.Financials.MonthlyRevenue = nil
	l.Financials.MonthlyProfit = nil

	flags := verification.Inspect(l)

	assert.Contains(t, codes(flags), verification.CodeMissingFinancial)
}

func TestInspectRulesDoNotShortCircuit(t *testing.T) {
	l := &entity.Listing{
		Category:   entity.CategoryOther,
		MediaCount: 0,
		Financials: entity.FinancialSnapshot{
			AskingPrice: f64(500000),
		},
		SuggestedMinPrice: f64(50000),
		SuggestedMaxPrice: f64(100000),
	}

	flags := verification.Inspect(l)

	assert.ElementsMatch(t, []string{
		verification.CodePriceAboveBand,
		verification.CodeMissingProof,
		verification.CodeLowSpecificity,
		verification.CodeMissingFinancial,
	}, codes(flags))
}

func TestInspectSortsHighMediumLow(t *testing.T) {
	l := &entity.Listing{
		Category:   entity.CategoryOther,
		MediaCount: 0,
		Financials: entity.FinancialSnapshot{
			AskingPrice: f64(500000),
		},
		SuggestedMinPrice: f64(50000),
		SuggestedMaxPrice: f64(100000),
	}

	flags := verification.Inspect(l)

	assert.Equal(t, []string{
		verification.CodeMissingProof,     // HIGH
		verification.CodePriceAboveBand,   // MEDIUM
		verification.CodeMissingFinancial, // MEDIUM, evaluated after
		verification.CodeLowSpecificity,   // LOW
	}, codes(flags))

	// Same input, same order, every time.
	assert.Equal(t, flags, verification.Inspect(l))
}
