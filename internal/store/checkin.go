package store

import (
	"context"
	"fmt"
	"time"

	"highfields/internal/utils"
	"highfields/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkInTableName = "highfields.checkins"

var checkInColumns = utils.StructTagValues(types.CheckIn{})

type CheckInRepository struct {
	pool *pgxpool.Pool
}

func NewCheckInRepository(pool *pgxpool.Pool) *CheckInRepository {
	return &CheckInRepository{pool: pool}
}

func (r *CheckInRepository) CreateCheckIn(ctx context.Context, checkIn *types.CheckIn) error {
	checkIn.ID = utils.NanoID()
	checkIn.Timestamp = time.Now().UTC()

	query, args, err := psql().Insert(checkInTableName).SetMap(utils.StructToMap(checkIn)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert checkin query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create checkin")
}

func (r *CheckInRepository) CheckIns(ctx context.Context, limit uint64) ([]*types.CheckIn, error) {
	query, args, err := newestFirst(checkInTableName, checkInColumns, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate checkins query: %w", err)
	}

	checkIns := make([]*types.CheckIn, 0)
	if err := pgxscan.Select(ctx, r.pool, &checkIns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch checkins: %w", err)
	}

	return checkIns, nil
}

// CheckInsSince returns every check-in at or after since, oldest first.
func (r *CheckInRepository) CheckInsSince(ctx context.Context, since time.Time) ([]*types.CheckIn, error) {
	query, args, err := psql().
		Select(checkInColumns...).
		From(checkInTableName).
		Where(sq.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate checkins since query: %w", err)
	}

	checkIns := make([]*types.CheckIn, 0)
	if err := pgxscan.Select(ctx, r.pool, &checkIns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch checkins since %s: %w", since.Format(time.RFC3339), err)
	}

	return checkIns, nil
}
