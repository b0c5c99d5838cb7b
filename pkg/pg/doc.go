// Package pg bootstraps a PostgreSQL connection pool for user directories
// backed by pgx/v5.
//
// Connect retries with a growing delay until the database answers a ping,
// so the process can start before the database does. Migrate runs goose
// migrations from any fs.FS, which lets packages ship their schema as an
// embedded filesystem:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, userdir.Migrations, "migrations", cfg, log); err != nil {
//		return err
//	}
//
// Configuration comes from PG_* environment variables; see Config.
package pg
