package models

import (
	"time"

	"github.com/google/uuid"
)

// A credited contributor. People are shared across shows and outlive any
// single import; FullName is the natural key.
type Person struct {
	ID int `db:"id"`

	FullName   string `db:"full_name"`
	UniqueName string `db:"unique_name"`

	InformationUrl *string    `db:"information_url"`
	AvatarAssetID  *uuid.UUID `db:"avatar_asset_id"`

	CreatedBy   int       `db:"created_by"`
	UpdatedBy   int       `db:"updated_by"`
	DateCreated time.Time `db:"date_created"`
	DateUpdated time.Time `db:"date_updated"`
}

// A show-level credit. GroupSlug/RoleSlug come from the podcast namespace
// taxonomy and are empty strings when the feed declared no recognized
// group/role.
type ShowPerson struct {
	ID        int    `db:"id"`
	ShowID    int    `db:"show_id"`
	PersonID  int    `db:"person_id"`
	GroupSlug string `db:"group_slug"`
	RoleSlug  string `db:"role_slug"`
}

// An episode-level credit.
type EpisodePerson struct {
	ID        int    `db:"id"`
	ShowID    int    `db:"show_id"`
	EpisodeID int    `db:"episode_id"`
	PersonID  int    `db:"person_id"`
	GroupSlug string `db:"group_slug"`
	RoleSlug  string `db:"role_slug"`
}
