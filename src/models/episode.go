package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EpisodeTypeFull    = "full"
	EpisodeTypeTrailer = "trailer"
	EpisodeTypeBonus   = "bonus"
)

type Episode struct {
	ID     int `db:"id"`
	ShowID int `db:"show_id"`

	// External guid from the source feed. Feeds may omit it.
	Guid *string `db:"guid"`

	Title string `db:"title"`

	// Unique within the owning show, not globally.
	Slug string `db:"slug"`

	AudioAssetID    uuid.UUID `db:"audio_asset_id"`
	DurationSeconds int       `db:"duration_seconds"`

	DescriptionMarkdown string `db:"description_markdown"`
	DescriptionHtml     string `db:"description_html"`

	CoverAssetID *uuid.UUID `db:"cover_asset_id"`

	ParentalAdvisory ParentalAdvisory `db:"parental_advisory"`

	Number       *int   `db:"number"`
	SeasonNumber *int   `db:"season_number"`
	Type         string `db:"type"`

	IsBlocked bool `db:"is_blocked"`

	Location

	PublishedAt time.Time `db:"published_at"`

	CreatedBy   int       `db:"created_by"`
	UpdatedBy   int       `db:"updated_by"`
	DateCreated time.Time `db:"date_created"`
	DateUpdated time.Time `db:"date_updated"`
}
