package valuation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/valuation"
)

func f64(v float64) *float64 { return &v }

func TestValuateSaaSFromMRR(t *testing.T) {
	est := valuation.Valuate(entity.CategorySaaS, entity.FinancialSnapshot{MRR: f64(10000)})

	assert.NotNil(t, est.Min)
	assert.NotNil(t, est.Max)
	assert.Equal(t, 30000.0, *est.Min)
	assert.Equal(t, 60000.0, *est.Max)
	assert.NotEmpty(t, est.Explanation)
}

func TestValuateContentSiteFromProfit(t *testing.T) {
	est := valuation.Valuate(entity.CategoryContentSite, entity.FinancialSnapshot{MonthlyProfit: f64(500)})

	assert.Equal(t, 5000.0, *est.Min)
	assert.Equal(t, 10000.0, *est.Max)
}

func TestValuateProfitAssumedFromRevenue(t *testing.T) {
	// No explicit profit: 30% of revenue stands in.
	est := valuation.Valuate(entity.CategoryEcommerce, entity.FinancialSnapshot{MonthlyRevenue: f64(1000)})

	assert.Equal(t, 600.0, *est.Min)  // 1000 * 0.30 * 2
	assert.Equal(t, 1200.0, *est.Max) // 1000 * 0.30 * 4
}

func TestValuateMRRDerivedFromARR(t *testing.T) {
	est := valuation.Valuate(entity.CategorySaaS, entity.FinancialSnapshot{ARR: f64(120000)})

	assert.Equal(t, 30000.0, *est.Min)
	assert.Equal(t, 60000.0, *est.Max)
}

func TestValuateSoftwarePrefersMRROverProfit(t *testing.T) {
	est := valuation.Valuate(entity.CategorySoftware, entity.FinancialSnapshot{
		MRR:           f64(1000),
		MonthlyProfit: f64(100000),
	})

	assert.Equal(t, 2500.0, *est.Min)
	assert.Equal(t, 5000.0, *est.Max)
}

func TestValuateHybridBundleFallsBackToProfit(t *testing.T) {
	est := valuation.Valuate(entity.CategoryHybridBundle, entity.FinancialSnapshot{MonthlyProfit: f64(100)})

	assert.Equal(t, 500.0, *est.Min)
	assert.Equal(t, 2500.0, *est.Max)
}

func TestValuateMissingBasisReturnsNullBand(t *testing.T) {
	for _, category := range entity.AllCategories {
		est := valuation.Valuate(category, entity.FinancialSnapshot{})

		assert.Nil(t, est.Min, "category %s", category)
		assert.Nil(t, est.Max, "category %s", category)
		assert.NotEmpty(t, est.Explanation, "category %s", category)
	}
}

func TestValuateZeroBasisReturnsNullBand(t *testing.T) {
	// An explicitly reported zero profit (or zero MRR) would collapse
	// the band to min == max == 0; that is no band at all.
	snap := entity.FinancialSnapshot{
		MonthlyProfit: f64(0),
		MRR:           f64(0),
		ARR:           f64(0),
	}

	for _, category := range entity.AllCategories {
		est := valuation.Valuate(category, snap)

		assert.Nil(t, est.Min, "category %s", category)
		assert.Nil(t, est.Max, "category %s", category)
		assert.NotEmpty(t, est.Explanation, "category %s", category)
	}
}

func TestValuateBandIsOrderedForEveryCategory(t *testing.T) {
	snap := entity.FinancialSnapshot{
		MonthlyRevenue: f64(20000),
		MonthlyProfit:  f64(6000),
		MRR:            f64(8000),
		ARR:            f64(96000),
	}

	for _, category := range entity.AllCategories {
		est := valuation.Valuate(category, snap)

		if assert.NotNil(t, est.Min, "category %s", category) &&
			assert.NotNil(t, est.Max, "category %s", category) {
			assert.Less(t, *est.Min, *est.Max, "category %s", category)
			assert.GreaterOrEqual(t, *est.Min, 0.0, "category %s", category)
		}
	}
}

func TestValuateIgnoresMRRForProfitCategories(t *testing.T) {
	// A newsletter with MRR but no profit/revenue still has no basis.
	est := valuation.Valuate(entity.CategoryNewsletter, entity.FinancialSnapshot{MRR: f64(5000)})

	assert.Nil(t, est.Min)
	assert.Nil(t, est.Max)
}
