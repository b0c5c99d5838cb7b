package userdir

import "embed"

// Migrations holds the goose migrations for the default users schema.
// Apply them with pg.Migrate(ctx, pool, userdir.Migrations, "migrations", cfg, log).
//
//go:embed migrations/*.sql
var Migrations embed.FS
