package usecase

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// normalizeEmail trims and lower-cases; addresses only vary by case in
// the local part in theory, never in practice.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateCreateListingInput(input CreateListingInput) ValidationErrors {
	var errs ValidationErrors

	title := strings.TrimSpace(input.Title)
	if title == "" {
		errs = append(errs, ValidationError{"title", "is required"})
	} else if utf8.RuneCountInString(title) < 3 {
		errs = append(errs, ValidationError{"title", "must have at least 3 characters"})
	} else if utf8.RuneCountInString(title) > 200 {
		errs = append(errs, ValidationError{"title", "must not exceed 200 characters"})
	}

	if _, err := entity.ParseCategory(input.Category); err != nil {
		errs = append(errs, ValidationError{"category", "is not a known category"})
	}

	if e := strings.TrimSpace(input.ContactEmail); e != "" && !isValidEmail(e) {
		errs = append(errs, ValidationError{"contact_email", "is invalid"})
	}

	errs = append(errs, validateSnapshot(input.Financials)...)
	return errs
}

func validateSnapshot(m entity.FinancialSnapshot) ValidationErrors {
	var errs ValidationErrors
	nonNegative := map[string]*float64{
		"monthly_revenue": m.MonthlyRevenue,
		"monthly_profit":  m.MonthlyProfit, // a loss is reported as profit 0, not negative
		"mrr":             m.MRR,
		"arr":             m.ARR,
		"cac":             m.CAC,
		"ltv":             m.LTV,
		"asking_price":    m.AskingPrice,
	}
	for _, field := range []string{"monthly_revenue", "monthly_profit", "mrr", "arr", "cac", "ltv", "asking_price"} {
		if v := nonNegative[field]; v != nil && *v < 0 {
			errs = append(errs, ValidationError{field, "must not be negative"})
		}
	}
	if m.ChurnRate != nil && (*m.ChurnRate < 0 || *m.ChurnRate > 100) {
		errs = append(errs, ValidationError{"churn_rate", "must be between 0 and 100"})
	}
	if m.MonthlyVisitors != nil && *m.MonthlyVisitors < 0 {
		errs = append(errs, ValidationError{"monthly_visitors", "must not be negative"})
	}
	return errs
}

func ValidateSubmitInterestInput(input SubmitInterestInput) ValidationErrors {
	var errs ValidationErrors

	name := strings.TrimSpace(input.Name)
	if name == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	} else if utf8.RuneCountInString(name) < 2 {
		errs = append(errs, ValidationError{"name", "must have at least 2 characters"})
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		errs = append(errs, ValidationError{"message", "is required"})
	} else if utf8.RuneCountInString(msg) < 10 {
		errs = append(errs, ValidationError{"message", "must have at least 10 characters"})
	}

	if strings.TrimSpace(input.BuyerType) != "" {
		if _, err := entity.ParseBuyerType(input.BuyerType); err != nil {
			errs = append(errs, ValidationError{"buyer_type", "is not a known buyer type"})
		}
	}

	return errs
}
