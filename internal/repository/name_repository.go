package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erevald/fantasy-names/internal/database"
	"github.com/erevald/fantasy-names/internal/model"
)

// NameRepo encapsulates all queries against the names table. Every
// method borrows exactly one connection from the pool and releases it
// on every exit path.
type NameRepo struct {
	pool *database.Pool
}

// NewNameRepo constructs a NameRepo over the provided pool. The pool is
// injected so tests can supply a different store.
func NewNameRepo(pool *database.Pool) *NameRepo {
	return &NameRepo{pool: pool}
}

// FindRandom returns up to spec.Count names in random order, filtered
// per the spec. Neutral names are always eligible when a specific
// gender is requested; an origin filter is an exact match. All filter
// values are bound parameters.
func (r *NameRepo) FindRandom(ctx context.Context, spec model.NameQuerySpec) (model.RandomNames, error) {
	out := model.RandomNames{
		Names:  []string{},
		Gender: spec.Gender,
		Origin: spec.Origin,
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return out, err
	}
	defer r.pool.Release(conn)

	q := randomQuery{
		gender:   spec.Gender,
		origin:   spec.Origin,
		limit:    spec.Count,
		randomFn: randomFn(r.pool.Driver()),
	}
	query, args := q.build()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return out, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		out.Names = append(out.Names, name)
	}
	if err := rows.Err(); err != nil {
		return out, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	out.Count = len(out.Names)
	return out, nil
}

// Add inserts one name and populates rec.ID. Origin is nullable. A
// constraint violation (such as an invalid gender reaching the storage
// check) or a connectivity failure surfaces as ErrPersistence.
func (r *NameRepo) Add(ctx context.Context, rec *model.NameRecord) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.pool.Release(conn)

	origin := sql.NullString{}
	if rec.Origin != nil && *rec.Origin != "" {
		origin = sql.NullString{String: *rec.Origin, Valid: true}
	}

	res, err := conn.ExecContext(ctx,
		"INSERT INTO names (name, gender, origin) VALUES (?, ?, ?)",
		rec.Name, rec.Gender, origin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	rec.ID = uint64(id)
	return nil
}

// Stats returns per-gender row counts. Genders with no rows are absent
// from the result rather than reported as zero.
func (r *NameRepo) Stats(ctx context.Context) ([]model.GenderCount, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.pool.Release(conn)

	rows, err := conn.QueryContext(ctx,
		"SELECT gender, COUNT(*) FROM names GROUP BY gender ORDER BY gender")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer rows.Close()

	var out []model.GenderCount
	for rows.Next() {
		var gc model.GenderCount
		if err := rows.Scan(&gc.Gender, &gc.Count); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		out = append(out, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return out, nil
}
