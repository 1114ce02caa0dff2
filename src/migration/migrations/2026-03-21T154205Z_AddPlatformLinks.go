package migrations

import (
	"context"
	"time"

	"git.wavelength.fm/wvl/wvl/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddPlatformLinks{})
}

type AddPlatformLinks struct{}

func (m AddPlatformLinks) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 3, 21, 15, 42, 5, 0, time.UTC))
}

func (m AddPlatformLinks) Name() string {
	return "AddPlatformLinks"
}

func (m AddPlatformLinks) Description() string {
	return "Adds the platform registry and per-show platform links"
}

func (m AddPlatformLinks) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE platform (
			id SERIAL NOT NULL PRIMARY KEY,
			slug VARCHAR(191) NOT NULL UNIQUE,
			type VARCHAR(32) NOT NULL,
			name VARCHAR(191) NOT NULL,
			home_url VARCHAR(512) NOT NULL,
			icon_name VARCHAR(64) NOT NULL DEFAULT ''
		);

		CREATE TABLE show_platform (
			id SERIAL NOT NULL PRIMARY KEY,
			show_id INT NOT NULL REFERENCES show (id) ON DELETE CASCADE,
			platform_slug VARCHAR(191) NOT NULL REFERENCES platform (slug),
			link_url VARCHAR(512) NOT NULL,
			link_content VARCHAR(255),
			is_visible BOOLEAN NOT NULL DEFAULT FALSE,
			UNIQUE (show_id, platform_slug)
		);
	`)
	return err
}

func (m AddPlatformLinks) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE show_platform;
		DROP TABLE platform;
	`)
	return err
}
