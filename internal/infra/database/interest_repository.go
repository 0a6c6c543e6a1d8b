package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/usecase"
)

type InterestRepository struct {
	DB *sql.DB
}

func NewInterestRepository(db *sql.DB) *InterestRepository {
	return &InterestRepository{DB: db}
}

const interestColumns = `
	id, listing_id, name, email, buyer_type, budget_range, message, source,
	status, created_at, updated_at`

func (r *InterestRepository) Create(ctx context.Context, i *entity.Interest) error {
	query := `
		INSERT INTO interests (` + interestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		i.ID, i.ListingID, i.Name, i.Email, string(i.BuyerType),
		nullString(i.BudgetRange), i.Message, nullString(i.Source),
		string(i.Status), i.CreatedAt, i.UpdatedAt,
	)
	return errors.Wrap(err, "insert interest")
}

func (r *InterestRepository) FindByID(ctx context.Context, id string) (*entity.Interest, error) {
	query := `SELECT ` + interestColumns + ` FROM interests WHERE id = $1`
	i, err := scanInterest(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &usecase.NotFoundError{Resource: "interest", ID: id}
	}
	if err != nil {
		return nil, errors.Wrap(err, "select interest")
	}
	return i, nil
}

func (r *InterestRepository) UpdateStatus(ctx context.Context, id string, status entity.InterestStatus, updatedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE interests SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), updatedAt, id,
	)
	if err != nil {
		return errors.Wrap(err, "update interest status")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &usecase.NotFoundError{Resource: "interest", ID: id}
	}
	return nil
}

// List returns interests newest-first. OwnerScopeID joins through
// listings so owners only see demand against their own assets;
// interests whose listing is gone only surface unscoped (admin).
func (r *InterestRepository) List(ctx context.Context, f usecase.InterestFilter) ([]*entity.Interest, int, error) {
	var where []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.ListingID != "" {
		where = append(where, "i.listing_id = "+arg(f.ListingID))
	}
	if f.Status != nil {
		where = append(where, "i.status = "+arg(string(*f.Status)))
	}

	from := ` FROM interests i`
	if f.OwnerScopeID != "" {
		from = ` FROM interests i JOIN listings l ON l.id = i.listing_id`
		where = append(where, "l.owner_id = "+arg(f.OwnerScopeID))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*)`+from+clause, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count interests")
	}

	cols := `
		i.id, i.listing_id, i.name, i.email, i.buyer_type, i.budget_range,
		i.message, i.source, i.status, i.created_at, i.updated_at`
	query := `SELECT ` + cols + from + clause +
		` ORDER BY i.created_at DESC LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "select interests")
	}
	defer rows.Close()

	var items []*entity.Interest
	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, 0, errors.Wrap(err, "scan interest")
		}
		items = append(items, i)
	}
	return items, total, errors.Wrap(rows.Err(), "iterate interests")
}

func scanInterest(row rowScanner) (*entity.Interest, error) {
	var i entity.Interest
	var budgetRange, source sql.NullString

	err := row.Scan(
		&i.ID, &i.ListingID, &i.Name, &i.Email, &i.BuyerType,
		&budgetRange, &i.Message, &source,
		&i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	i.BudgetRange = budgetRange.String
	i.Source = source.String
	return &i, nil
}
