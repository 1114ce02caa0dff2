package models

import (
	"time"

	"github.com/google/uuid"
)

// How the show's audience advisory was declared in its feed. Absence is a
// meaningful value and is distinct from "clean".
type ParentalAdvisory string

const (
	AdvisoryUnspecified ParentalAdvisory = ""
	AdvisoryClean       ParentalAdvisory = "clean"
	AdvisoryExplicit    ParentalAdvisory = "explicit"
)

const (
	ShowTypeEpisodic = "episodic"
	ShowTypeSerial   = "serial"
)

type Show struct {
	ID int `db:"id"`

	// URL-safe name, unique across the site. Also the basis of the show's
	// canonical feed URL.
	Name  string `db:"name"`
	Title string `db:"title"`

	DescriptionMarkdown string `db:"description_markdown"`
	DescriptionHtml     string `db:"description_html"`

	CoverAssetID uuid.UUID `db:"cover_asset_id"`

	LanguageCode string `db:"language_code"`
	CategoryID   int    `db:"category_id"`

	ParentalAdvisory ParentalAdvisory `db:"parental_advisory"`

	OwnerName  string `db:"owner_name"`
	OwnerEmail string `db:"owner_email"`
	Publisher  string `db:"publisher"`
	Type       string `db:"type"`
	Copyright  string `db:"copyright"`

	IsBlocked   bool `db:"is_blocked"`
	IsCompleted bool `db:"is_completed"`

	Location

	// The feed this show was imported from, and the feed URL we serve for it
	// going forward.
	ImportedFeedUrl *string `db:"imported_feed_url"`
	FeedUrl         string  `db:"feed_url"`

	CreatedBy   int       `db:"created_by"`
	UpdatedBy   int       `db:"updated_by"`
	DateCreated time.Time `db:"date_created"`
	DateUpdated time.Time `db:"date_updated"`
}

// A place a show or episode is "about" or was recorded at, per the podcast
// namespace <podcast:location> tag. Name is the presence flag; geo and the
// OpenStreetMap id are independently optional.
type Location struct {
	LocationName  *string `db:"location_name"`
	LocationGeo   *string `db:"location_geo"`
	LocationOsmID *string `db:"location_osm_id"`
}
