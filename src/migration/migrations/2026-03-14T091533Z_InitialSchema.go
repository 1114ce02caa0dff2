package migrations

import (
	"context"
	"time"

	"git.wavelength.fm/wvl/wvl/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(InitialSchema{})
}

type InitialSchema struct{}

func (m InitialSchema) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 3, 14, 9, 15, 33, 0, time.UTC))
}

func (m InitialSchema) Name() string {
	return "InitialSchema"
}

func (m InitialSchema) Description() string {
	return "Creates the core tables: assets, categories, people, shows, episodes, credits"
}

func (m InitialSchema) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE asset (
			id UUID NOT NULL PRIMARY KEY,
			uploader_id INT,
			s3_key VARCHAR(2000) NOT NULL,
			filename VARCHAR(2000) NOT NULL,
			size INT NOT NULL,
			mime_type VARCHAR(255) NOT NULL,
			sha1sum CHAR(40) NOT NULL,
			width INT NOT NULL DEFAULT 0,
			height INT NOT NULL DEFAULT 0
		);

		CREATE TABLE category (
			id SERIAL NOT NULL PRIMARY KEY,
			parent_id INT REFERENCES category (id),
			code VARCHAR(191) NOT NULL UNIQUE,
			name VARCHAR(191) NOT NULL
		);

		CREATE TABLE person (
			id SERIAL NOT NULL PRIMARY KEY,
			full_name VARCHAR(192) NOT NULL,
			unique_name VARCHAR(192) NOT NULL,
			information_url VARCHAR(512),
			avatar_asset_id UUID REFERENCES asset (id),
			created_by INT NOT NULL,
			updated_by INT NOT NULL,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			date_updated TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE UNIQUE INDEX person_full_name ON person (full_name);
		CREATE INDEX person_unique_name ON person (unique_name);

		CREATE TABLE show (
			id SERIAL NOT NULL PRIMARY KEY,
			name VARCHAR(191) NOT NULL UNIQUE,
			title VARCHAR(255) NOT NULL,
			description_markdown TEXT NOT NULL,
			description_html TEXT NOT NULL,
			cover_asset_id UUID NOT NULL REFERENCES asset (id),
			language_code VARCHAR(10) NOT NULL,
			category_id INT NOT NULL REFERENCES category (id),
			parental_advisory VARCHAR(10) NOT NULL DEFAULT '',
			owner_name VARCHAR(255) NOT NULL DEFAULT '',
			owner_email VARCHAR(255) NOT NULL DEFAULT '',
			publisher VARCHAR(255) NOT NULL DEFAULT '',
			type VARCHAR(32) NOT NULL DEFAULT 'episodic',
			copyright VARCHAR(255) NOT NULL DEFAULT '',
			is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
			is_completed BOOLEAN NOT NULL DEFAULT FALSE,
			location_name VARCHAR(255),
			location_geo VARCHAR(255),
			location_osm_id VARCHAR(32),
			feed_url VARCHAR(512) NOT NULL,
			created_by INT NOT NULL,
			updated_by INT NOT NULL,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			date_updated TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE episode (
			id SERIAL NOT NULL PRIMARY KEY,
			show_id INT NOT NULL REFERENCES show (id) ON DELETE CASCADE,
			guid VARCHAR(512),
			title VARCHAR(255) NOT NULL,
			slug VARCHAR(191) NOT NULL,
			audio_asset_id UUID NOT NULL REFERENCES asset (id),
			duration_seconds INT NOT NULL DEFAULT 0,
			description_markdown TEXT NOT NULL,
			description_html TEXT NOT NULL,
			cover_asset_id UUID REFERENCES asset (id),
			parental_advisory VARCHAR(10) NOT NULL DEFAULT '',
			number INT,
			season_number INT,
			type VARCHAR(32) NOT NULL DEFAULT 'full',
			is_blocked BOOLEAN NOT NULL DEFAULT FALSE,
			location_name VARCHAR(255),
			location_geo VARCHAR(255),
			location_osm_id VARCHAR(32),
			published_at TIMESTAMP WITH TIME ZONE NOT NULL,
			created_by INT NOT NULL,
			updated_by INT NOT NULL,
			date_created TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			date_updated TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			UNIQUE (show_id, slug)
		);
		CREATE INDEX episode_published_at ON episode (show_id, published_at);

		CREATE TABLE show_person (
			id SERIAL NOT NULL PRIMARY KEY,
			show_id INT NOT NULL REFERENCES show (id) ON DELETE CASCADE,
			person_id INT NOT NULL REFERENCES person (id),
			group_slug VARCHAR(64) NOT NULL DEFAULT '',
			role_slug VARCHAR(64) NOT NULL DEFAULT ''
		);

		CREATE TABLE episode_person (
			id SERIAL NOT NULL PRIMARY KEY,
			show_id INT NOT NULL REFERENCES show (id) ON DELETE CASCADE,
			episode_id INT NOT NULL REFERENCES episode (id) ON DELETE CASCADE,
			person_id INT NOT NULL REFERENCES person (id),
			group_slug VARCHAR(64) NOT NULL DEFAULT '',
			role_slug VARCHAR(64) NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO category (code, name) VALUES
			('arts', 'Arts'),
			('business', 'Business'),
			('comedy', 'Comedy'),
			('education', 'Education'),
			('fiction', 'Fiction'),
			('government', 'Government'),
			('history', 'History'),
			('health-fitness', 'Health & Fitness'),
			('kids-family', 'Kids & Family'),
			('leisure', 'Leisure'),
			('music', 'Music'),
			('news', 'News'),
			('religion-spirituality', 'Religion & Spirituality'),
			('science', 'Science'),
			('society-culture', 'Society & Culture'),
			('sports', 'Sports'),
			('technology', 'Technology'),
			('true-crime', 'True Crime'),
			('tv-film', 'TV & Film');
	`)
	return err
}

func (m InitialSchema) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE episode_person;
		DROP TABLE show_person;
		DROP TABLE episode;
		DROP TABLE show;
		DROP TABLE person;
		DROP TABLE category;
		DROP TABLE asset;
	`)
	return err
}
