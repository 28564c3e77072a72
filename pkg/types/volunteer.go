package types

import (
	"fmt"
	"time"
)

// MinistryArea is one of the fixed service areas a volunteer can pick.
type MinistryArea string

const (
	MinistryAreaWorship        MinistryArea = "Worship Team"
	MinistryAreaKids           MinistryArea = "Kids Ministry"
	MinistryAreaYouth          MinistryArea = "Youth Ministry"
	MinistryAreaWelcome        MinistryArea = "Welcome Team"
	MinistryAreaTechMedia      MinistryArea = "Tech/Media"
	MinistryAreaHospitality    MinistryArea = "Hospitality"
	MinistryAreaOutreach       MinistryArea = "Outreach"
	MinistryAreaPrayer         MinistryArea = "Prayer Team"
	MinistryAreaAdministration MinistryArea = "Administration"
	MinistryAreaOther          MinistryArea = "Other"
)

var ministryAreas = []MinistryArea{
	MinistryAreaWorship,
	MinistryAreaKids,
	MinistryAreaYouth,
	MinistryAreaWelcome,
	MinistryAreaTechMedia,
	MinistryAreaHospitality,
	MinistryAreaOutreach,
	MinistryAreaPrayer,
	MinistryAreaAdministration,
	MinistryAreaOther,
}

// MinistryAreas returns the selectable areas in display order.
func MinistryAreas() []MinistryArea {
	out := make([]MinistryArea, len(ministryAreas))
	copy(out, ministryAreas)
	return out
}

func (m MinistryArea) Valid() bool {
	for _, area := range ministryAreas {
		if area == m {
			return true
		}
	}
	return false
}

func ParseMinistryArea(s string) (MinistryArea, error) {
	area := MinistryArea(s)
	if !area.Valid() {
		return "", fmt.Errorf("unknown ministry area %q", s)
	}
	return area, nil
}

type Volunteer struct {
	ID            string         `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Email         string         `db:"email" json:"email"`
	Phone         string         `db:"phone" json:"phone"`
	MinistryAreas []MinistryArea `db:"ministry_areas" json:"ministry_areas"`
	Availability  string         `db:"availability" json:"availability"`
	Notes         *string        `db:"notes" json:"notes"`
	Timestamp     time.Time      `db:"created_at" json:"timestamp"`
}

type VolunteerCreate struct {
	Name          string         `json:"name" validate:"notblank"`
	Email         string         `json:"email" validate:"notblank"`
	Phone         string         `json:"phone" validate:"notblank"`
	MinistryAreas []MinistryArea `json:"ministry_areas" validate:"min=1,dive,ministryarea"`
	Availability  string         `json:"availability" validate:"notblank"`
	Notes         *string        `json:"notes"`
}
