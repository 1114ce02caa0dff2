package models

// A podcast category, following the Apple Podcasts taxonomy. Categories are
// seeded by migration; shows reference them by id.
type Category struct {
	ID       int  `db:"id"`
	ParentID *int `db:"parent_id"`

	Code string `db:"code"`
	Name string `db:"name"`
}
