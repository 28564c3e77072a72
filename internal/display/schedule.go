package display

import (
	"fmt"
	"strings"
)

type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayCodes = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Days lists the selector in display order.
func Days() []Day {
	return []Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayCodes[d]
}

// ParseDay accepts a three-letter code in any case.
func ParseDay(code string) (Day, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i, c := range dayCodes {
		if c == code {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", code)
}

func (d *Day) UnmarshalText(text []byte) error {
	day, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = day
	return nil
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Event struct {
	Name string
	Time string
	Icon Icon
}

// Gradient is the pair of colours a day's chip and event cards are painted with.
type Gradient struct {
	From string
	To   string
}

var weeklyEvents = map[Day][]Event{
	Sunday: {
		{Name: "Sunday Service", Time: "9:00 AM", Icon: IconPeople},
	},
	Monday: {
		{Name: "Men's Coffee at Kerb Cafe", Time: "8:00 AM", Icon: IconCafe},
		{Name: "HUB Singers Practice", Time: "5:30 PM", Icon: IconMusicalNotes},
	},
	Tuesday: {
		{Name: "Young Adults Life Group", Time: "6:30 PM", Icon: IconPeopleCircle},
	},
	Wednesday: {
		{Name: "Prayer Meeting", Time: "5:30 PM", Icon: IconHandLeft},
		{Name: "Hope Harbour Recovery Group", Time: "6:30 PM", Icon: IconHeart},
	},
	Thursday: {
		{Name: "Men's Life Group", Time: "8:30 AM", Icon: IconBook},
		{Name: "Ladies Craft Group", Time: "10:30 AM", Icon: IconColorPalette},
	},
	Friday: {
		{Name: "Ladies Life Group", Time: "9:00 AM", Icon: IconBook},
		{Name: "Youth Group", Time: "6:30 PM - 8:00 PM", Icon: IconHappy},
	},
	Saturday: {},
}

var dayGradients = map[Day]Gradient{
	Sunday:    {From: "#FF6B6B", To: "#FF8E8E"},
	Monday:    {From: "#4ECDC4", To: "#45B7AA"},
	Tuesday:   {From: "#7B68EE", To: "#9683EC"},
	Wednesday: {From: "#FFD93D", To: "#FFE566"},
	Thursday:  {From: "#FF9500", To: "#FFB347"},
	Friday:    {From: "#FF6B9D", To: "#FF8EB3"},
	Saturday:  {From: "#6C5CE7", To: "#8B7CF0"},
}

// RestDayMessage is shown when a day has no events.
const RestDayMessage = "No scheduled events. Enjoy your rest day!"

// Schedule returns a copy of the fixed events for day. It panics on a Day outside
// Sunday..Saturday; use ParseDay for untrusted input.
func Schedule(day Day) []Event {
	mustBeValid(day)
	events := weeklyEvents[day]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// DayColors panics on an invalid Day, like Schedule.
func DayColors(day Day) Gradient {
	mustBeValid(day)
	return dayGradients[day]
}

func mustBeValid(day Day) {
	if !day.Valid() {
		panic(fmt.Sprintf("display: invalid %s", day))
	}
}
