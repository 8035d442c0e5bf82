package repository

import (
	"strconv"
	"strings"
)

// Dialect selects the SQL flavour the repositories speak.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DialectFor maps a database/sql driver name to its dialect. Unknown drivers
// are treated as sqlite.
func DialectFor(driver string) Dialect {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "pgx":
		return DialectPostgres
	default:
		return DialectSQLite
	}
}

// Rebind rewrites ? placeholders into $n for postgres. Queries must not carry
// literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
