// Package verification inspects a listing for suspicious or incomplete
// data and produces advisory flags. Flags never block anything; each
// run replaces the previous set atomically.
package verification

import (
	"sort"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

// Flag codes, one per rule.
const (
	CodePriceAboveBand   = "PRICE_FAR_ABOVE_RECOMMENDATION"
	CodePriceBelowBand   = "PRICE_FAR_BELOW_RECOMMENDATION"
	CodeTrafficMismatch  = "TRAFFIC_REVENUE_MISMATCH"
	CodeMissingProof     = "MISSING_PROOF"
	CodeLowSpecificity   = "LOW_TYPE_SPECIFICITY"
	CodeMissingFinancial = "MISSING_FINANCIAL_DATA"
)

const (
	lowVisitorThreshold  = 1000
	highRevenueThreshold = 10000
)

// Inspect runs every rule against the listing. Rules are independent
// and all applicable ones fire. The result is sorted HIGH, MEDIUM, LOW
// with evaluation order preserved inside a tier.
func Inspect(l *entity.Listing) []entity.Flag {
	var flags []entity.Flag
	m := l.Financials

	if m.AskingPrice != nil && l.SuggestedMaxPrice != nil && *m.AskingPrice > 2*(*l.SuggestedMaxPrice) {
		flags = append(flags, entity.Flag{
			Code:     CodePriceAboveBand,
			Severity: entity.SeverityMedium,
			Message:  "asking price is far above the recommended band",
		})
	}

	if m.AskingPrice != nil && l.SuggestedMinPrice != nil && *m.AskingPrice < 0.5*(*l.SuggestedMinPrice) {
		flags = append(flags, entity.Flag{
			Code:     CodePriceBelowBand,
			Severity: entity.SeverityLow,
			Message:  "asking price is far below the recommended band, verify the reported data",
		})
	}

	if m.MonthlyVisitors != nil && m.MonthlyRevenue != nil &&
		*m.MonthlyVisitors < lowVisitorThreshold && *m.MonthlyRevenue > highRevenueThreshold {
		flags = append(flags, entity.Flag{
			Code:     CodeTrafficMismatch,
			Severity: entity.SeverityHigh,
			Message:  "traffic and revenue do not match, verify the metrics",
		})
	}

	if l.MediaCount == 0 {
		flags = append(flags, entity.Flag{
			Code:     CodeMissingProof,
			Severity: entity.SeverityHigh,
			Message:  "no proof or media artifacts attached",
		})
	}

	if l.Category == entity.CategoryOther {
		flags = append(flags, entity.Flag{
			Code:     CodeLowSpecificity,
			Severity: entity.SeverityLow,
			Message:  "asset type is unspecific, buyers trust concrete categories more",
		})
	}

	if m.MonthlyRevenue == nil && m.MonthlyProfit == nil {
		flags = append(flags, entity.Flag{
			Code:     CodeMissingFinancial,
			Severity: entity.SeverityMedium,
			Message:  "no revenue or profit reported",
		})
	}

	sort.SliceStable(flags, func(i, j int) bool {
		return severityRank(flags[i].Severity) < severityRank(flags[j].Severity)
	})
	return flags
}

func severityRank(s entity.Severity) int {
	switch s {
	case entity.SeverityHigh:
		return 0
	case entity.SeverityMedium:
		return 1
	default:
		return 2
	}
}
