package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
)

// FinancialHistoryRepository keeps the trail of snapshots a listing
// reported over time. Rows are listing-owned: they die with it.
type FinancialHistoryRepository struct {
	DB *sql.DB
}

func NewFinancialHistoryRepository(db *sql.DB) *FinancialHistoryRepository {
	return &FinancialHistoryRepository{DB: db}
}

func (r *FinancialHistoryRepository) Append(ctx context.Context, listingID string, snap entity.FinancialSnapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "marshal snapshot")
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO listing_financial_history (listing_id, snapshot, recorded_at) VALUES ($1, $2, NOW())`,
		listingID, body,
	)
	return errors.Wrap(err, "insert financial history")
}

func (r *FinancialHistoryRepository) DeleteByListing(ctx context.Context, listingID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM listing_financial_history WHERE listing_id = $1`, listingID,
	)
	if err != nil {
		return 0, errors.Wrap(err, "delete financial history")
	}
	n, _ := res.RowsAffected()
	return n, nil
}
