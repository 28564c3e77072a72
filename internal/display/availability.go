// Package display derives what the screens show from loaded records and static tables.
package display

import "fmt"

// Availability is what a life-group card shows about open places.
type Availability struct {
	SpotsLeft int
	Full      bool
	Badge     string
	Button    string
	CanJoin   bool
}

// GroupAvailability is recomputed on every render and never cached.
func GroupAvailability(maxMembers, currentMembers int) Availability {
	spots := maxMembers - currentMembers
	if spots <= 0 {
		return Availability{SpotsLeft: 0, Full: true, Badge: "Group Full", Button: "Waitlist"}
	}

	return Availability{
		SpotsLeft: spots,
		Badge:     fmt.Sprintf("%d spots left", spots),
		Button:    "Join Group",
		CanJoin:   true,
	}
}
