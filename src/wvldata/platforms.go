package wvldata

import (
	"context"

	"git.wavelength.fm/wvl/wvl/src/db"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/oops"
	"github.com/jackc/pgx/v5"
)

/*
Fetches one platform from the registry by slug. Returns db.NotFound when the
slug is not a recognized platform.
*/
func FetchPlatformBySlug(ctx context.Context, dbConn db.ConnOrTx, slug string) (*models.Platform, error) {
	platform, err := db.QueryOne[models.Platform](ctx, dbConn,
		`
		SELECT id, slug, type, name, home_url, icon_name
		FROM platform
		WHERE slug = $1
		`,
		slug,
	)
	if err != nil {
		if err == db.NotFound {
			return nil, err
		}
		return nil, oops.New(err, "failed to fetch platform")
	}
	return platform, nil
}

/*
Batch-inserts a show's platform links. Links are hidden until an operator
surfaces them.
*/
func CreateShowPlatforms(ctx context.Context, dbConn db.ConnOrTx, links []models.ShowPlatform) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([][]any, len(links))
	for i, link := range links {
		rows[i] = []any{link.ShowID, link.PlatformSlug, link.LinkUrl, link.LinkContent, link.IsVisible}
	}

	_, err := dbConn.CopyFrom(ctx,
		pgx.Identifier{"show_platform"},
		[]string{"show_id", "platform_slug", "link_url", "link_content", "is_visible"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return oops.New(err, "failed to insert show platform links")
	}
	return nil
}
