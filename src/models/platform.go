package models

// An entry in the fixed registry of recognized platforms (podcasting apps,
// social profiles, funding services). Seeded by migration, read-only at
// runtime.
type Platform struct {
	ID       int    `db:"id"`
	Slug     string `db:"slug"`
	Type     string `db:"type"`
	Name     string `db:"name"`
	HomeUrl  string `db:"home_url"`
	IconName string `db:"icon_name"`
}

const (
	PlatformTypePodcasting = "podcasting"
	PlatformTypeSocial     = "social"
	PlatformTypeFunding    = "funding"
)

// A show's presence on one platform. Hidden until an operator surfaces it.
type ShowPlatform struct {
	ID           int     `db:"id"`
	ShowID       int     `db:"show_id"`
	PlatformSlug string  `db:"platform_slug"`
	LinkUrl      string  `db:"link_url"`
	LinkContent  *string `db:"link_content"`
	IsVisible    bool    `db:"is_visible"`
}
