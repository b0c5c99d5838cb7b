package userdir

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

// PostgresDirectory reads users from a PostgreSQL table. The expected schema
// ships under migrations/ and is applied with the pg.Migrate helper; any
// table with the same columns works.
type PostgresDirectory struct {
	db    *pgxpool.Pool
	table string
}

type PostgresOption func(*PostgresDirectory)

// WithTable points the directory at a different table, "users" by default.
func WithTable(table string) PostgresOption {
	return func(d *PostgresDirectory) {
		if table != "" {
			d.table = table
		}
	}
}

func NewPostgresDirectory(db *pgxpool.Pool, opts ...PostgresOption) *PostgresDirectory {
	d := &PostgresDirectory{
		db:    db,
		table: "users",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *PostgresDirectory) FindByUsername(ctx context.Context, username string) ([]User, error) {
	query := fmt.Sprintf(
		`SELECT id, username, password, name, email FROM %s WHERE username = $1 ORDER BY id`,
		d.table,
	)

	rows, err := d.db.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("userdir: query users: %w", err)
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("userdir: scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("userdir: read users: %w", err)
	}
	return out, nil
}

func (d *PostgresDirectory) FindByID(ctx context.Context, id string) (User, error) {
	query := fmt.Sprintf(
		`SELECT id, username, password, name, email FROM %s WHERE id = $1`,
		d.table,
	)

	var u User
	err := d.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Email)
	if pg.IsNotFound(err) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("userdir: query user %q: %w", id, err)
	}
	return u, nil
}
