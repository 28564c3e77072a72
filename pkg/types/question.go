package types

import "time"

type Question struct {
	ID          string    `db:"id" json:"id"`
	Name        *string   `db:"name" json:"name"`
	Email       *string   `db:"email" json:"email"`
	Question    string    `db:"question" json:"question"`
	IsAnonymous bool      `db:"is_anonymous" json:"is_anonymous"`
	Timestamp   time.Time `db:"created_at" json:"timestamp"`
}

type QuestionCreate struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Question    string  `json:"question" validate:"notblank"`
	IsAnonymous bool    `json:"is_anonymous"`
}
