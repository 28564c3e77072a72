package types

import "time"

type PrayerRequest struct {
	ID          string    `db:"id" json:"id"`
	Name        *string   `db:"name" json:"name"`
	Request     string    `db:"request" json:"request"`
	IsAnonymous bool      `db:"is_anonymous" json:"is_anonymous"`
	Timestamp   time.Time `db:"created_at" json:"timestamp"`
}

type PrayerRequestCreate struct {
	Name        *string `json:"name"`
	Request     string  `json:"request" validate:"notblank"`
	IsAnonymous bool    `json:"is_anonymous"`
}
