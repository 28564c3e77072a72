package store

import (
	"context"
	"fmt"
	"time"

	"highfields/internal/utils"
	"highfields/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

const questionTableName = "highfields.questions"

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, question *types.Question) error {
	question.ID = utils.NanoID()
	question.Timestamp = time.Now().UTC()

	query, args, err := psql().Insert(questionTableName).SetMap(utils.StructToMap(question)).ToSql()
	if err != nil {
		return fmt.Errorf("build question insert: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "insert question")
}
