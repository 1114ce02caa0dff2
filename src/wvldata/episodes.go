package wvldata

import (
	"context"

	"git.wavelength.fm/wvl/wvl/src/db"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/oops"
)

const episodeColumns = `
	id, show_id, guid, title, slug,
	audio_asset_id, duration_seconds,
	description_markdown, description_html,
	cover_asset_id,
	parental_advisory,
	number, season_number, type,
	is_blocked,
	location_name, location_geo, location_osm_id,
	published_at,
	created_by, updated_by, date_created, date_updated
`

func CreateEpisode(ctx context.Context, dbConn db.ConnOrTx, episode *models.Episode) (int, error) {
	episodeID, err := db.QueryOneScalar[int](ctx, dbConn,
		`
		INSERT INTO episode (
			show_id, guid, title, slug,
			audio_asset_id, duration_seconds,
			description_markdown, description_html,
			cover_asset_id,
			parental_advisory,
			number, season_number, type,
			is_blocked,
			location_name, location_geo, location_osm_id,
			published_at,
			created_by, updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $19)
		RETURNING id
		`,
		episode.ShowID, episode.Guid, episode.Title, episode.Slug,
		episode.AudioAssetID, episode.DurationSeconds,
		episode.DescriptionMarkdown, episode.DescriptionHtml,
		episode.CoverAssetID,
		episode.ParentalAdvisory,
		episode.Number, episode.SeasonNumber, episode.Type,
		episode.IsBlocked,
		episode.LocationName, episode.LocationGeo, episode.LocationOsmID,
		episode.PublishedAt,
		episode.CreatedBy,
	)
	if err != nil {
		return 0, oops.New(err, "failed to create episode")
	}
	return episodeID, nil
}

type EpisodesQuery struct {
	ShowID int

	// Optional filters
	SeasonNumber   *int
	IncludeBlocked bool

	Limit int
}

/*
Fetches episodes matching the query, oldest publication first.
*/
func FetchEpisodes(ctx context.Context, dbConn db.ConnOrTx, q EpisodesQuery) ([]*models.Episode, error) {
	var qb db.QueryBuilder
	qb.Add(`SELECT ` + episodeColumns + ` FROM episode`)
	qb.Add(`WHERE show_id = $?`, q.ShowID)
	if q.SeasonNumber != nil {
		qb.Add(`AND season_number = $?`, *q.SeasonNumber)
	}
	if !q.IncludeBlocked {
		qb.Add(`AND NOT is_blocked`)
	}
	qb.Add(`ORDER BY published_at ASC, id ASC`)
	if q.Limit > 0 {
		qb.Add(`LIMIT $?`, q.Limit)
	}

	episodes, err := db.Query[models.Episode](ctx, dbConn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch episodes")
	}
	return episodes, nil
}

/*
Fetches all episodes of a show, blocked ones included, oldest publication
first.
*/
func FetchShowEpisodes(ctx context.Context, dbConn db.ConnOrTx, showID int) ([]*models.Episode, error) {
	return FetchEpisodes(ctx, dbConn, EpisodesQuery{
		ShowID:         showID,
		IncludeBlocked: true,
	})
}
