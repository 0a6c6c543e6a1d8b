package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/usecase"
)

type ListingRepository struct {
	DB *sql.DB
}

func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{DB: db}
}

const listingColumns = `
	id, slug, title, description, category, status, owner_id, contact_email,
	monthly_revenue, monthly_profit, mrr, arr, churn_rate, cac, ltv,
	asking_price, currency, monthly_visitors, media_count,
	suggested_min_price, suggested_max_price, valuation_note, flags,
	moderation_comment, moderation_suggested_min, moderation_suggested_max,
	published_at, created_at, updated_at`

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	flags, err := json.Marshal(l.Flags)
	if err != nil {
		return errors.Wrap(err, "marshal flags")
	}

	query := `
		INSERT INTO listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
		        $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19,
		        $20, $21, $22, $23,
		        $24, $25, $26,
		        $27, $28, $29)
	`
	_, err = r.DB.ExecContext(ctx, query,
		l.ID, l.Slug, l.Title, nullString(l.Description), string(l.Category), string(l.Status), l.OwnerID, nullString(l.ContactEmail),
		l.Financials.MonthlyRevenue, l.Financials.MonthlyProfit, l.Financials.MRR, l.Financials.ARR,
		l.Financials.ChurnRate, l.Financials.CAC, l.Financials.LTV,
		l.Financials.AskingPrice, nullString(l.Financials.Currency), l.Financials.MonthlyVisitors, l.MediaCount,
		l.SuggestedMinPrice, l.SuggestedMaxPrice, nullString(l.ValuationNote), flags,
		nullString(l.ModerationComment), l.ModerationSuggestedMin, l.ModerationSuggestedMax,
		l.PublishedAt, l.CreatedAt, l.UpdatedAt,
	)
	return errors.Wrap(err, "insert listing")
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	l, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &usecase.NotFoundError{Resource: "listing", ID: id}
	}
	if err != nil {
		return nil, errors.Wrap(err, "select listing")
	}
	return l, nil
}

func (r *ListingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM listings WHERE slug = $1)`, slug,
	).Scan(&exists)
	return exists, errors.Wrap(err, "slug exists")
}

// Update rewrites the whole row in one statement so status and the
// derived advisory fields always come from the same snapshot.
func (r *ListingRepository) Update(ctx context.Context, l *entity.Listing) error {
	flags, err := json.Marshal(l.Flags)
	if err != nil {
		return errors.Wrap(err, "marshal flags")
	}

	query := `
		UPDATE listings SET
			title = $2, description = $3, category = $4, status = $5, contact_email = $6,
			monthly_revenue = $7, monthly_profit = $8, mrr = $9, arr = $10,
			churn_rate = $11, cac = $12, ltv = $13,
			asking_price = $14, currency = $15, monthly_visitors = $16, media_count = $17,
			suggested_min_price = $18, suggested_max_price = $19, valuation_note = $20, flags = $21,
			moderation_comment = $22, moderation_suggested_min = $23, moderation_suggested_max = $24,
			published_at = $25, updated_at = $26
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		l.ID,
		l.Title, nullString(l.Description), string(l.Category), string(l.Status), nullString(l.ContactEmail),
		l.Financials.MonthlyRevenue, l.Financials.MonthlyProfit, l.Financials.MRR, l.Financials.ARR,
		l.Financials.ChurnRate, l.Financials.CAC, l.Financials.LTV,
		l.Financials.AskingPrice, nullString(l.Financials.Currency), l.Financials.MonthlyVisitors, l.MediaCount,
		l.SuggestedMinPrice, l.SuggestedMaxPrice, nullString(l.ValuationNote), flags,
		nullString(l.ModerationComment), l.ModerationSuggestedMin, l.ModerationSuggestedMax,
		l.PublishedAt, l.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "update listing")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &usecase.NotFoundError{Resource: "listing", ID: l.ID}
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete listing")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &usecase.NotFoundError{Resource: "listing", ID: id}
	}
	return nil
}

func (r *ListingRepository) List(ctx context.Context, f usecase.ListingFilter) ([]*entity.Listing, int, error) {
	var where []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !f.ViewerIsAdmin {
		if f.ViewerID != "" {
			where = append(where, fmt.Sprintf("(status = 'PUBLISHED' OR owner_id = %s)", arg(f.ViewerID)))
		} else {
			where = append(where, "status = 'PUBLISHED'")
		}
	}
	if f.Status != nil {
		where = append(where, "status = "+arg(string(*f.Status)))
	}
	if f.Category != nil {
		where = append(where, "category = "+arg(string(*f.Category)))
	}
	if f.OwnerID != "" {
		where = append(where, "owner_id = "+arg(f.OwnerID))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`+clause, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count listings")
	}

	query := `SELECT ` + listingColumns + ` FROM listings` + clause +
		` ORDER BY created_at DESC LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "select listings")
	}
	defer rows.Close()

	var items []*entity.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, errors.Wrap(err, "scan listing")
		}
		items = append(items, l)
	}
	return items, total, errors.Wrap(rows.Err(), "iterate listings")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*entity.Listing, error) {
	var l entity.Listing
	var description, contactEmail, currency, valuationNote, moderationComment sql.NullString
	var flags []byte

	err := row.Scan(
		&l.ID, &l.Slug, &l.Title, &description, &l.Category, &l.Status, &l.OwnerID, &contactEmail,
		&l.Financials.MonthlyRevenue, &l.Financials.MonthlyProfit, &l.Financials.MRR, &l.Financials.ARR,
		&l.Financials.ChurnRate, &l.Financials.CAC, &l.Financials.LTV,
		&l.Financials.AskingPrice, &currency, &l.Financials.MonthlyVisitors, &l.MediaCount,
		&l.SuggestedMinPrice, &l.SuggestedMaxPrice, &valuationNote, &flags,
		&moderationComment, &l.ModerationSuggestedMin, &l.ModerationSuggestedMax,
		&l.PublishedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Description = description.String
	l.ContactEmail = contactEmail.String
	l.Financials.Currency = currency.String
	l.ValuationNote = valuationNote.String
	l.ModerationComment = moderationComment.String

	if len(flags) > 0 {
		if err := json.Unmarshal(flags, &l.Flags); err != nil {
			return nil, errors.Wrap(err, "unmarshal flags")
		}
	}
	return &l, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
