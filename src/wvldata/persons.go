package wvldata

import (
	"context"
	"time"

	"git.wavelength.fm/wvl/wvl/src/db"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/oops"
	"github.com/google/uuid"
	"github.com/jpillora/backoff"
)

const personColumns = `id, full_name, unique_name, information_url, avatar_asset_id, created_by, updated_by, date_created, date_updated`

/*
Fetches a person by their full display name, the natural key for people.
Returns db.NotFound if no result is found.
*/
func FetchPersonByName(ctx context.Context, dbConn db.ConnOrTx, fullName string) (*models.Person, error) {
	person, err := db.QueryOne[models.Person](ctx, dbConn,
		`
		SELECT `+personColumns+`
		FROM person
		WHERE full_name = $1
		`,
		fullName,
	)
	if err != nil {
		if err == db.NotFound {
			return nil, err
		}
		return nil, oops.New(err, "failed to fetch person")
	}
	return person, nil
}

type PersonInput struct {
	FullName       string
	InformationUrl *string
	AvatarAssetID  *uuid.UUID
	CreatedBy      int
}

/*
Get-or-create by full name. If the person already exists their record is
returned untouched - imports never overwrite existing people. Creation is
race-safe: the insert rides on the unique constraint on full_name and loses
gracefully to a concurrent import creating the same person, in which case we
fetch whatever won.
*/
func GetOrCreatePerson(ctx context.Context, dbConn db.ConnOrTx, in PersonInput) (*models.Person, error) {
	if existing, err := FetchPersonByName(ctx, dbConn, in.FullName); err == nil {
		return existing, nil
	} else if err != db.NotFound {
		return nil, err
	}

	person, err := db.QueryOne[models.Person](ctx, dbConn,
		`
		INSERT INTO person (full_name, unique_name, information_url, avatar_asset_id, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (full_name) DO NOTHING
		RETURNING `+personColumns+`
		`,
		in.FullName,
		models.GenerateSlug(in.FullName),
		in.InformationUrl,
		in.AvatarAssetID,
		in.CreatedBy,
	)
	if err == nil {
		return person, nil
	}
	if err != db.NotFound {
		return nil, oops.New(err, "failed to create person")
	}

	// Somebody else inserted this person between our fetch and our insert.
	// Their row may not be visible to us quite yet, depending on isolation.
	b := &backoff.Backoff{
		Min:    10 * time.Millisecond,
		Max:    500 * time.Millisecond,
		Jitter: true,
	}
	for attempts := 0; attempts < 5; attempts++ {
		person, err := FetchPersonByName(ctx, dbConn, in.FullName)
		if err == nil {
			return person, nil
		}
		if err != db.NotFound {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(b.Duration()):
		}
	}
	return nil, oops.New(nil, "person %q vanished during get-or-create", in.FullName)
}

func AddShowPerson(ctx context.Context, dbConn db.ConnOrTx, showID int, personID int, groupSlug string, roleSlug string) error {
	_, err := dbConn.Exec(ctx,
		`
		INSERT INTO show_person (show_id, person_id, group_slug, role_slug)
		VALUES ($1, $2, $3, $4)
		`,
		showID, personID, groupSlug, roleSlug,
	)
	if err != nil {
		return oops.New(err, "failed to credit person on show")
	}
	return nil
}

func AddEpisodePerson(ctx context.Context, dbConn db.ConnOrTx, showID int, episodeID int, personID int, groupSlug string, roleSlug string) error {
	_, err := dbConn.Exec(ctx,
		`
		INSERT INTO episode_person (show_id, episode_id, person_id, group_slug, role_slug)
		VALUES ($1, $2, $3, $4, $5)
		`,
		showID, episodeID, personID, groupSlug, roleSlug,
	)
	if err != nil {
		return oops.New(err, "failed to credit person on episode")
	}
	return nil
}
