package migrations

import (
	"context"
	"time"

	"git.wavelength.fm/wvl/wvl/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddImportedFeedUrl{})
}

type AddImportedFeedUrl struct{}

func (m AddImportedFeedUrl) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 6, 2, 18, 30, 17, 0, time.UTC))
}

func (m AddImportedFeedUrl) Name() string {
	return "AddImportedFeedUrl"
}

func (m AddImportedFeedUrl) Description() string {
	return "Records the source feed URL on shows created by the importer"
}

func (m AddImportedFeedUrl) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		ALTER TABLE show ADD COLUMN imported_feed_url VARCHAR(512);
	`)
	return err
}

func (m AddImportedFeedUrl) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		ALTER TABLE show DROP COLUMN imported_feed_url;
	`)
	return err
}
