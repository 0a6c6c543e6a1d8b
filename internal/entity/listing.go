package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies the kind of digital asset being sold.
type Category string

const (
	CategoryEcommerce     Category = "ECOMMERCE"
	CategorySaaS          Category = "SAAS"
	CategorySoftware      Category = "SOFTWARE"
	CategoryContentSite   Category = "CONTENT_SITE"
	CategorySocialProfile Category = "SOCIAL_PROFILE"
	CategoryNewsletter    Category = "NEWSLETTER"
	CategoryCommunity     Category = "COMMUNITY"
	CategoryCourse        Category = "COURSE"
	CategoryHybridBundle  Category = "HYBRID_BUNDLE"
	CategoryOther         Category = "OTHER"
)

// AllCategories lists every valid category, in display order.
var AllCategories = []Category{
	CategoryEcommerce,
	CategorySaaS,
	CategorySoftware,
	CategoryContentSite,
	CategorySocialProfile,
	CategoryNewsletter,
	CategoryCommunity,
	CategoryCourse,
	CategoryHybridBundle,
	CategoryOther,
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type ListingStatus string

const (
	StatusDraft         ListingStatus = "DRAFT"
	StatusSubmitted     ListingStatus = "SUBMITTED"
	StatusPendingReview ListingStatus = "PENDING_REVIEW"
	StatusPublished     ListingStatus = "PUBLISHED"
	StatusRejected      ListingStatus = "REJECTED"
	StatusArchived      ListingStatus = "ARCHIVED"
)

// FinancialSnapshot holds the seller-reported metrics of a listing.
// Every number is optional; nil means "not reported".
type FinancialSnapshot struct {
	MonthlyRevenue  *float64 `json:"monthly_revenue,omitempty"`
	MonthlyProfit   *float64 `json:"monthly_profit,omitempty"`
	MRR             *float64 `json:"mrr,omitempty"`
	ARR             *float64 `json:"arr,omitempty"`
	ChurnRate       *float64 `json:"churn_rate,omitempty"`
	CAC             *float64 `json:"cac,omitempty"`
	LTV             *float64 `json:"ltv,omitempty"`
	AskingPrice     *float64 `json:"asking_price,omitempty"`
	Currency        string   `json:"currency,omitempty"`
	MonthlyVisitors *int64   `json:"monthly_visitors,omitempty"`
}

// Listing is a digital asset put up for sale by its owner.
type Listing struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Category     Category      `json:"category"`
	Status       ListingStatus `json:"status"`
	OwnerID      string        `json:"owner_id"`
	ContactEmail string        `json:"contact_email,omitempty"`

	Financials FinancialSnapshot `json:"financials"`
	MediaCount int               `json:"media_count"`

	// Advisory fields, recomputed from Financials and Category.
	// Never edited by hand.
	SuggestedMinPrice *float64 `json:"suggested_min_price,omitempty"`
	SuggestedMaxPrice *float64 `json:"suggested_max_price,omitempty"`
	ValuationNote     string   `json:"valuation_note,omitempty"`
	Flags             []Flag   `json:"flags,omitempty"`

	ModerationComment      string   `json:"moderation_comment,omitempty"`
	ModerationSuggestedMin *float64 `json:"moderation_suggested_min,omitempty"`
	ModerationSuggestedMax *float64 `json:"moderation_suggested_max,omitempty"`

	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewListing creates a draft listing owned by ownerID. The slug still
// carries no collision suffix; uniqueness is the caller's problem.
func NewListing(ownerID, title string, category Category) *Listing {
	now := time.Now()
	return &Listing{
		ID:        uuid.New().String(),
		Slug:      Slugify(title),
		Title:     title,
		Category:  category,
		Status:    StatusDraft,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Slugify lowers the title and collapses every non-alphanumeric run
// into a single dash.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
