// Package valuation derives an advisory price band from a listing's
// self-reported metrics. The output is informational only: it never
// overwrites or constrains the seller's asking price.
package valuation

import (
	"fmt"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

// Estimate is a suggested price band. Min and Max are nil when the
// metrics required for the category are missing; Explanation always
// says how (or why not) the band was computed.
type Estimate struct {
	Min         *float64
	Max         *float64
	Explanation string
}

const needsMoreData = "not enough financial data to suggest a price band; report monthly profit or revenue (or MRR/ARR for recurring-revenue assets)"

// profit-assumed margin when only revenue is reported
const assumedMargin = 0.30

// Valuate computes the advisory band for one category + snapshot.
// Pure: no side effects, never fails, never fabricates a number.
func Valuate(category entity.Category, m entity.FinancialSnapshot) Estimate {
	profit, hasProfit := effectiveProfit(m)
	mrr, hasMRR := effectiveMRR(m)

	switch category {
	case entity.CategoryEcommerce:
		return profitBand(profit, hasProfit, 2, 4)
	case entity.CategorySaaS:
		return mrrBand(mrr, hasMRR, 3, 6)
	case entity.CategorySoftware:
		if hasMRR {
			return mrrBand(mrr, true, 2.5, 5)
		}
		return profitBand(profit, hasProfit, 3, 5)
	case entity.CategoryContentSite:
		return profitBand(profit, hasProfit, 10, 20)
	case entity.CategorySocialProfile:
		return profitBand(profit, hasProfit, 12, 30)
	case entity.CategoryNewsletter:
		return profitBand(profit, hasProfit, 15, 30)
	case entity.CategoryCommunity:
		return profitBand(profit, hasProfit, 12, 24)
	case entity.CategoryCourse:
		return profitBand(profit, hasProfit, 10, 20)
	case entity.CategoryHybridBundle:
		if hasMRR {
			return mrrBand(mrr, true, 2, 7)
		}
		return profitBand(profit, hasProfit, 5, 25)
	case entity.CategoryOther:
		return profitBand(profit, hasProfit, 6, 18)
	default:
		// Unparseable categories never reach the engine, but a pure
		// function still answers.
		return Estimate{Explanation: needsMoreData}
	}
}

// effectiveProfit is the explicit monthly profit, else an assumed
// margin over monthly revenue.
func effectiveProfit(m entity.FinancialSnapshot) (float64, bool) {
	if m.MonthlyProfit != nil {
		return *m.MonthlyProfit, true
	}
	if m.MonthlyRevenue != nil {
		return *m.MonthlyRevenue * assumedMargin, true
	}
	return 0, false
}

// effectiveMRR is the explicit MRR, else ARR spread over 12 months.
func effectiveMRR(m entity.FinancialSnapshot) (float64, bool) {
	if m.MRR != nil {
		return *m.MRR, true
	}
	if m.ARR != nil {
		return *m.ARR / 12, true
	}
	return 0, false
}

// A zero or negative basis collapses the band to a point (or inverts
// it), so it is treated the same as a missing one.
func profitBand(profit float64, ok bool, lo, hi float64) Estimate {
	if !ok || profit <= 0 {
		return Estimate{Explanation: needsMoreData}
	}
	return band(profit*lo, profit*hi,
		fmt.Sprintf("%gx-%gx monthly profit of %.2f", lo, hi, profit))
}

func mrrBand(mrr float64, ok bool, lo, hi float64) Estimate {
	if !ok || mrr <= 0 {
		return Estimate{Explanation: needsMoreData}
	}
	return band(mrr*lo, mrr*hi,
		fmt.Sprintf("%gx-%gx MRR of %.2f", lo, hi, mrr))
}

func band(min, max float64, explanation string) Estimate {
	return Estimate{Min: &min, Max: &max, Explanation: explanation}
}
