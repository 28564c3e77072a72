package store

import (
	"context"
	"fmt"
	"time"

	"highfields/internal/utils"
	"highfields/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	lifeGroupTableName       = "highfields.life_groups"
	lifeGroupSignupTableName = "highfields.life_group_signups"
)

var lifeGroupColumns = utils.StructTagValues(types.LifeGroup{})

type LifeGroupRepository struct {
	pool *pgxpool.Pool
}

func NewLifeGroupRepository(pool *pgxpool.Pool) *LifeGroupRepository {
	return &LifeGroupRepository{pool: pool}
}

// LifeGroups lists groups in creation order, which is the order they were seeded.
func (r *LifeGroupRepository) LifeGroups(ctx context.Context, limit uint64) ([]*types.LifeGroup, error) {
	query, args, err := psql().
		Select(lifeGroupColumns...).
		From(lifeGroupTableName).
		OrderBy("created_at ASC", "name ASC").
		Limit(ClampLimit(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate life groups query: %w", err)
	}

	groups := make([]*types.LifeGroup, 0)
	if err := pgxscan.Select(ctx, r.pool, &groups, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch life groups: %w", err)
	}

	return groups, nil
}

func (r *LifeGroupRepository) LifeGroup(ctx context.Context, id string) (*types.LifeGroup, error) {
	query, args, err := lifeGroupByIDQuery(id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate life group query: %w", err)
	}

	var group types.LifeGroup
	err = pgxscan.Get(ctx, r.pool, &group, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrLifeGroupNotFound
		}
		return nil, fmt.Errorf("failed to fetch life group %s: %w", id, err)
	}

	return &group, nil
}

// UpsertLifeGroup inserts or updates a group without touching its membership count.
func (r *LifeGroupRepository) UpsertLifeGroup(ctx context.Context, group *types.LifeGroup) error {
	if group.CreatedAt.IsZero() {
		group.CreatedAt = time.Now().UTC()
	}

	groupMap := utils.StructToMap(group)

	query, args, err := psql().
		Insert(lifeGroupTableName).
		SetMap(groupMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(groupMap, "id", "created_at", "current_members")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert life group query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert life group")
}

func (r *LifeGroupRepository) DeleteLifeGroup(ctx context.Context, id string) error {
	query, args, err := psql().Delete(lifeGroupTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete life group query for %s: %w", id, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete life group")
}

// Signup records the signup and bumps the group's member count in one transaction.
// It returns types.ErrLifeGroupNotFound when the group does not exist.
func (r *LifeGroupRepository) Signup(ctx context.Context, signup *types.LifeGroupSignup) error {
	signup.ID = utils.NanoID()
	signup.Timestamp = time.Now().UTC()

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query, args, err := psql().
			Update(lifeGroupTableName).
			Set("current_members", sq.Expr("current_members + 1")).
			Where(sq.Eq{"id": signup.GroupID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate member count query: %w", err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to increment member count: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return types.ErrLifeGroupNotFound
		}

		query, args, err = psql().Insert(lifeGroupSignupTableName).SetMap(utils.StructToMap(signup)).ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate insert signup query: %w", err)
		}

		_, err = tx.Exec(ctx, query, args...)
		return utils.ErrorWrapOrNil(err, "failed to create life group signup")
	})
}

func lifeGroupByIDQuery(id string) sq.SelectBuilder {
	return psql().
		Select(lifeGroupColumns...).
		From(lifeGroupTableName).
		Where(sq.Eq{"id": id}).
		Limit(1)
}
