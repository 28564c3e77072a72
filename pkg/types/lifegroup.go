package types

import (
	"fmt"
	"time"
)

const DefaultLifeGroupCapacity = 12

// LifeGroupKind classifies a group for display. It replaces guessing from the group name.
type LifeGroupKind string

const (
	LifeGroupKindStudy       LifeGroupKind = "study"
	LifeGroupKindFamily      LifeGroupKind = "family"
	LifeGroupKindYoungAdults LifeGroupKind = "young-adults"
	LifeGroupKindWomen       LifeGroupKind = "women"
	LifeGroupKindMen         LifeGroupKind = "men"
)

func ParseLifeGroupKind(s string) (LifeGroupKind, error) {
	switch k := LifeGroupKind(s); k {
	case LifeGroupKindStudy, LifeGroupKindFamily, LifeGroupKindYoungAdults, LifeGroupKindWomen, LifeGroupKindMen:
		return k, nil
	case "":
		return LifeGroupKindStudy, nil
	}
	return "", fmt.Errorf("unknown life group kind %q", s)
}

func (k *LifeGroupKind) UnmarshalText(text []byte) error {
	kind, err := ParseLifeGroupKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

type LifeGroup struct {
	ID             string        `db:"id" json:"id"`
	Name           string        `db:"name" json:"name"`
	Description    string        `db:"description" json:"description"`
	Leader         string        `db:"leader" json:"leader"`
	Schedule       string        `db:"schedule" json:"schedule"`
	Location       string        `db:"location" json:"location"`
	MaxMembers     int           `db:"max_members" json:"max_members"`
	CurrentMembers int           `db:"current_members" json:"current_members"`
	ImageURL       *string       `db:"image_url" json:"image_url"`
	Kind           LifeGroupKind `db:"kind" json:"kind"`
	CreatedAt      time.Time     `db:"created_at" json:"-"`
}

type LifeGroupSignup struct {
	ID        string    `db:"id" json:"id"`
	GroupID   string    `db:"group_id" json:"group_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Timestamp time.Time `db:"created_at" json:"timestamp"`
}

type LifeGroupSignupCreate struct {
	GroupID string `json:"group_id" validate:"notblank"`
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank"`
	Phone   string `json:"phone" validate:"notblank"`
}
