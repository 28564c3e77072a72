package store

import (
	"context"
	"fmt"
	"time"

	"highfields/internal/utils"
	"highfields/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const donationTableName = "highfields.donations"

var donationColumns = utils.StructTagValues(types.Donation{})

type DonationRepository struct {
	pool *pgxpool.Pool
}

func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

// CreateDonation stores the intent in whole cents; Amount is the source of truth on input.
func (r *DonationRepository) CreateDonation(ctx context.Context, donation *types.Donation) error {
	donation.ID = utils.NanoID()
	donation.Timestamp = time.Now().UTC()
	donation.AmountCents = types.AmountToCents(donation.Amount)

	query, args, err := psql().Insert(donationTableName).SetMap(utils.StructToMap(donation)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert donation query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create donation")
}

func (r *DonationRepository) Donations(ctx context.Context, limit uint64) ([]*types.Donation, error) {
	query, args, err := newestFirst(donationTableName, donationColumns, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donations query: %w", err)
	}

	donations := make([]*types.Donation, 0)
	if err := pgxscan.Select(ctx, r.pool, &donations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch donations: %w", err)
	}

	for _, donation := range donations {
		donation.Amount = types.CentsToAmount(donation.AmountCents)
	}

	return donations, nil
}
