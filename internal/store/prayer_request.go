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

const prayerRequestTableName = "highfields.prayer_requests"

var prayerRequestColumns = utils.StructTagValues(types.PrayerRequest{})

type PrayerRequestRepository struct {
	pool *pgxpool.Pool
}

func NewPrayerRequestRepository(pool *pgxpool.Pool) *PrayerRequestRepository {
	return &PrayerRequestRepository{pool: pool}
}

func (r *PrayerRequestRepository) CreatePrayerRequest(ctx context.Context, request *types.PrayerRequest) error {
	request.ID = utils.NanoID()
	request.Timestamp = time.Now().UTC()

	query, args, err := psql().Insert(prayerRequestTableName).SetMap(utils.StructToMap(request)).ToSql()
	if err != nil {
		return fmt.Errorf("build prayer insert: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert prayer request: %w", err)
	}

	return nil
}

func (r *PrayerRequestRepository) LatestPrayerRequests(ctx context.Context, limit uint64) ([]*types.PrayerRequest, error) {
	query, args, err := newestFirst(prayerRequestTableName, prayerRequestColumns, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest prayer query: %w", err)
	}

	out := make([]*types.PrayerRequest, 0)
	if err := pgxscan.Select(ctx, r.pool, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select latest prayer requests: %w", err)
	}

	return out, nil
}
