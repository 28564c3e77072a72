package store

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// DefaultListLimit caps every listing endpoint.
const DefaultListLimit uint64 = 100

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ClampLimit keeps a requested page size within (0, DefaultListLimit].
func ClampLimit(limit uint64) uint64 {
	if limit == 0 || limit > DefaultListLimit {
		return DefaultListLimit
	}
	return limit
}

// newestFirst builds the shared "latest N rows" listing query.
func newestFirst(table string, columns []string, limit uint64) sq.SelectBuilder {
	return psql().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(ClampLimit(limit))
}

// buildUpdateClause creates the SET clause for ON CONFLICT DO UPDATE
// e.g., "name = EXCLUDED.name, slug = EXCLUDED.slug, ..."
func buildUpdateClause(fields map[string]any, skip ...string) string {
	names := make([]string, 0, len(fields))
	for field := range fields {
		if slices.Contains(skip, field) {
			continue
		}
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, fmt.Sprintf("%s = EXCLUDED.%s", field, field))
	}
	return strings.Join(parts, ", ")
}
