package types

import "time"

type CheckIn struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Phone       *string   `db:"phone" json:"phone"`
	IsFirstTime bool      `db:"is_first_time" json:"is_first_time"`
	Notes       *string   `db:"notes" json:"notes"`
	Timestamp   time.Time `db:"created_at" json:"timestamp"`
}

type CheckInCreate struct {
	Name        string  `json:"name" validate:"notblank"`
	Phone       *string `json:"phone"`
	IsFirstTime bool    `json:"is_first_time"`
	Notes       *string `json:"notes"`
}
