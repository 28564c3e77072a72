package display

import (
	"strings"
	"testing"

	"highfields/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupAvailability(t *testing.T) {
	tests := []struct {
		name     string
		max, cur int
		want     Availability
	}{
		{"full", 10, 10, Availability{Full: true, Badge: "Group Full", Button: "Waitlist"}},
		{"one left", 10, 9, Availability{SpotsLeft: 1, Badge: "1 spots left", Button: "Join Group", CanJoin: true}},
		{"over capacity", 10, 12, Availability{Full: true, Badge: "Group Full", Button: "Waitlist"}},
		{"empty", 12, 0, Availability{SpotsLeft: 12, Badge: "12 spots left", Button: "Join Group", CanJoin: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupAvailability(tt.max, tt.cur))
		})
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("wed")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, day)
	assert.Equal(t, "WED", day.String())

	_, err = ParseDay("FUNDAY")
	assert.Error(t, err)

	var d Day
	require.NoError(t, d.UnmarshalText([]byte("FRI")))
	assert.Equal(t, Friday, d)
}

func TestSchedule(t *testing.T) {
	for _, day := range Days() {
		assert.NotEmpty(t, DayColors(day).From, day.String())
	}

	assert.Empty(t, Schedule(Saturday))

	mon := Schedule(Monday)
	require.Len(t, mon, 2)
	assert.Equal(t, "Men's Coffee at Kerb Cafe", mon[0].Name)
	assert.Equal(t, IconCafe, mon[0].Icon)

	mon[0].Name = "changed"
	assert.Equal(t, "Men's Coffee at Kerb Cafe", Schedule(Monday)[0].Name)

	assert.Equal(t, Gradient{From: "#FF6B6B", To: "#FF8E8E"}, DayColors(Sunday))
}

func TestOutOfRangeDayPanics(t *testing.T) {
	assert.False(t, Day(7).Valid())
	assert.False(t, Day(-1).Valid())
	assert.True(t, Saturday.Valid())

	assert.Panics(t, func() { Schedule(Day(7)) })
	assert.Panics(t, func() { DayColors(Day(-1)) })
	assert.Equal(t, "Day(7)", Day(7).String())
}

func TestGroupIcon(t *testing.T) {
	tests := []struct {
		kind types.LifeGroupKind
		want Icon
	}{
		{types.LifeGroupKindWomen, IconWoman},
		{types.LifeGroupKindMen, IconMan},
		{types.LifeGroupKindYoungAdults, IconPeople},
		{types.LifeGroupKindFamily, IconHeart},
		{types.LifeGroupKindStudy, IconBook},
		{"", IconBook},
	}

	for _, tt := range tests {
		icon, err := GroupIcon(tt.kind)
		require.NoError(t, err, tt.kind)
		assert.Equal(t, tt.want, icon, tt.kind)
	}

	_, err := GroupIcon("choir")
	assert.ErrorContains(t, err, `unknown life group kind "choir"`)
}

func TestChannelLinks(t *testing.T) {
	assert.Equal(t, YouTubeChannelURL, LinkChannel.URL())
	assert.Equal(t, YouTubeChannelURL+"/streams", LinkStreams.URL())
	assert.Equal(t, YouTubeChannelURL+"?sub_confirmation=1", LinkSubscribe.URL())

	for _, l := range ChannelLinks() {
		assert.True(t, strings.HasPrefix(l.URL(), "https://www.youtube.com/"))
		assert.NotEmpty(t, l.Title())
	}

	bogus := ChannelLink(len(ChannelLinks()))
	assert.Equal(t, "ChannelLink(5)", bogus.String())
	assert.Panics(t, func() { _ = bogus.URL() })
	assert.Panics(t, func() { _ = bogus.Title() })
	assert.Panics(t, func() { _ = bogus.Subtitle() })
}

func TestMinistries(t *testing.T) {
	got := Ministries()
	require.Len(t, got, 4)
	assert.Equal(t, "Meals Ministry", got[0].Name)
	assert.Equal(t, "Hospitality Team", got[3].Name)
}
