package store

import (
	"context"
	"fmt"

	"highfields/internal/utils"
	"highfields/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sermonTableName = "highfields.sermons"

var sermonColumns = utils.StructTagValues(types.Sermon{})

type SermonRepository struct {
	pool *pgxpool.Pool
}

func NewSermonRepository(pool *pgxpool.Pool) *SermonRepository {
	return &SermonRepository{pool: pool}
}

// Sermons lists the most recent sermons first.
func (r *SermonRepository) Sermons(ctx context.Context, limit uint64) ([]*types.Sermon, error) {
	query, args, err := psql().
		Select(sermonColumns...).
		From(sermonTableName).
		OrderBy("date DESC").
		Limit(ClampLimit(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sermons query: %w", err)
	}

	sermons := make([]*types.Sermon, 0)
	if err := pgxscan.Select(ctx, r.pool, &sermons, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch sermons: %w", err)
	}

	return sermons, nil
}

func (r *SermonRepository) Sermon(ctx context.Context, id string) (*types.Sermon, error) {
	query, args, err := psql().
		Select(sermonColumns...).
		From(sermonTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sermon query: %w", err)
	}

	var sermon types.Sermon
	err = pgxscan.Get(ctx, r.pool, &sermon, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrSermonNotFound
		}
		return nil, fmt.Errorf("failed to fetch sermon %s: %w", id, err)
	}

	return &sermon, nil
}

func (r *SermonRepository) UpsertSermon(ctx context.Context, sermon *types.Sermon) error {
	sermonMap := utils.StructToMap(sermon)

	query, args, err := psql().
		Insert(sermonTableName).
		SetMap(sermonMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(sermonMap, "id")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert sermon query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert sermon")
}

func (r *SermonRepository) DeleteSermon(ctx context.Context, id string) error {
	query, args, err := psql().Delete(sermonTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete sermon query for %s: %w", id, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete sermon")
}
