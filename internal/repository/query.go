package repository

import (
	"strings"

	"github.com/erevald/fantasy-names/internal/model"
)

// randomQuery is the structural form of a random-name selection. The
// builder renders it into SQL text and a parallel argument list; filter
// values only ever appear in the argument list, never in the text.
type randomQuery struct {
	gender   string // "" or "any" means no gender restriction
	origin   string // "" means no origin restriction
	limit    int
	randomFn string // dialect random function, e.g. RAND() or RANDOM()
}

// build renders the query. A gender restriction always admits neutral
// rows alongside the requested gender.
func (q randomQuery) build() (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT name FROM names")

	var where []string
	if q.gender != "" && q.gender != model.GenderAny {
		where = append(where, "(gender = ? OR gender = ?)")
		args = append(args, q.gender, model.GenderNeutral)
	}
	if q.origin != "" {
		where = append(where, "origin = ?")
		args = append(args, q.origin)
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}

	sb.WriteString(" ORDER BY ")
	sb.WriteString(q.randomFn)
	sb.WriteString(" LIMIT ?")
	args = append(args, q.limit)

	return sb.String(), args
}

// randomFn maps a driver name to its random ordering function.
func randomFn(driver string) string {
	if driver == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
