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

const connectRequestTableName = "highfields.connect_requests"

var connectRequestColumns = utils.StructTagValues(types.ConnectRequest{})

type ConnectRequestRepository struct {
	pool *pgxpool.Pool
}

func NewConnectRequestRepository(pool *pgxpool.Pool) *ConnectRequestRepository {
	return &ConnectRequestRepository{pool: pool}
}

func (r *ConnectRequestRepository) CreateConnectRequest(ctx context.Context, request *types.ConnectRequest) error {
	request.ID = utils.NanoID()
	request.Timestamp = time.Now().UTC()

	query, args, err := psql().Insert(connectRequestTableName).SetMap(utils.StructToMap(request)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert connect request query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create connect request")
}

func (r *ConnectRequestRepository) ConnectRequests(ctx context.Context, limit uint64) ([]*types.ConnectRequest, error) {
	query, args, err := newestFirst(connectRequestTableName, connectRequestColumns, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate connect requests query: %w", err)
	}

	requests := make([]*types.ConnectRequest, 0)
	if err := pgxscan.Select(ctx, r.pool, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch connect requests: %w", err)
	}

	return requests, nil
}
