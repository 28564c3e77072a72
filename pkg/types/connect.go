package types

import "time"

const DefaultConnectInterest = "Life Group"

type ConnectRequest struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Interest  string    `db:"interest" json:"interest"`
	Timestamp time.Time `db:"created_at" json:"timestamp"`
}

type ConnectRequestCreate struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Phone    string `json:"phone" validate:"notblank"`
	Interest string `json:"interest"`
}
