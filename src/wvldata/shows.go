package wvldata

import (
	"context"

	"git.wavelength.fm/wvl/wvl/src/db"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/oops"
)

func CreateShow(ctx context.Context, dbConn db.ConnOrTx, show *models.Show) (int, error) {
	showID, err := db.QueryOneScalar[int](ctx, dbConn,
		`
		INSERT INTO show (
			name, title,
			description_markdown, description_html,
			cover_asset_id,
			language_code, category_id,
			parental_advisory,
			owner_name, owner_email, publisher, type, copyright,
			is_blocked, is_completed,
			location_name, location_geo, location_osm_id,
			imported_feed_url, feed_url,
			created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $21)
		RETURNING id
		`,
		show.Name, show.Title,
		show.DescriptionMarkdown, show.DescriptionHtml,
		show.CoverAssetID,
		show.LanguageCode, show.CategoryID,
		show.ParentalAdvisory,
		show.OwnerName, show.OwnerEmail, show.Publisher, show.Type, show.Copyright,
		show.IsBlocked, show.IsCompleted,
		show.LocationName, show.LocationGeo, show.LocationOsmID,
		show.ImportedFeedUrl, show.FeedUrl,
		show.CreatedBy,
	)
	if err != nil {
		return 0, oops.New(err, "failed to create show")
	}
	return showID, nil
}

/*
Fetches a show by id. Returns db.NotFound if no result is found.
*/
func FetchShow(ctx context.Context, dbConn db.ConnOrTx, showID int) (*models.Show, error) {
	show, err := db.QueryOne[models.Show](ctx, dbConn,
		`
		SELECT
			id, name, title,
			description_markdown, description_html,
			cover_asset_id,
			language_code, category_id,
			parental_advisory,
			owner_name, owner_email, publisher, type, copyright,
			is_blocked, is_completed,
			location_name, location_geo, location_osm_id,
			imported_feed_url, feed_url,
			created_by, updated_by, date_created, date_updated
		FROM show
		WHERE id = $1
		`,
		showID,
	)
	if err != nil {
		if err == db.NotFound {
			return nil, err
		}
		return nil, oops.New(err, "failed to fetch show")
	}
	return show, nil
}
