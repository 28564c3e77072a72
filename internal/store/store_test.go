package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit uint64
		want  uint64
	}{
		{name: "zero uses default", limit: 0, want: DefaultListLimit},
		{name: "within range", limit: 25, want: 25},
		{name: "at max", limit: DefaultListLimit, want: DefaultListLimit},
		{name: "above max", limit: 1000, want: DefaultListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.limit))
		})
	}
}

func TestBuildUpdateClause(t *testing.T) {
	fields := map[string]any{
		"id":              "x",
		"name":            "Men's Breakfast",
		"current_members": 14,
		"max_members":     20,
	}

	got := buildUpdateClause(fields, "id", "current_members")
	assert.Equal(t, "max_members = EXCLUDED.max_members, name = EXCLUDED.name", got)
}

func TestNewestFirst(t *testing.T) {
	query, args, err := newestFirst(checkInTableName, []string{"id", "name"}, 0).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name FROM highfields.checkins ORDER BY created_at DESC LIMIT 100", query)
	assert.Empty(t, args)
}

func TestLifeGroupByIDQuery(t *testing.T) {
	query, args, err := lifeGroupByIDQuery("grp1").ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM highfields.life_groups WHERE id = $1 LIMIT 1")
	assert.Equal(t, []any{"grp1"}, args)
}

func TestColumnsSkipDerivedFields(t *testing.T) {
	assert.NotContains(t, donationColumns, "amount")
	assert.Contains(t, donationColumns, "amount_cents")
	assert.Contains(t, lifeGroupColumns, "kind")
}
