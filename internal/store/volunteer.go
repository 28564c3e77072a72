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

const volunteerTableName = "highfields.volunteers"

var volunteerColumns = utils.StructTagValues(types.Volunteer{})

type VolunteerRepository struct {
	pool *pgxpool.Pool
}

func NewVolunteerRepository(pool *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{pool: pool}
}

func (r *VolunteerRepository) CreateVolunteer(ctx context.Context, volunteer *types.Volunteer) error {
	volunteer.ID = utils.NanoID()
	volunteer.Timestamp = time.Now().UTC()

	query, args, err := psql().Insert(volunteerTableName).SetMap(utils.StructToMap(volunteer)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert volunteer query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create volunteer")
}

func (r *VolunteerRepository) Volunteers(ctx context.Context, limit uint64) ([]*types.Volunteer, error) {
	query, args, err := newestFirst(volunteerTableName, volunteerColumns, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate volunteers query: %w", err)
	}

	volunteers := make([]*types.Volunteer, 0)
	if err := pgxscan.Select(ctx, r.pool, &volunteers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	return volunteers, nil
}
