package importer

import "fmt"

/*
Assigns collision-free slugs within one import. Slug uniqueness is per show,
so each import gets a fresh deduper.

Assign must be called in episode processing order; each returned slug is
recorded before the next call, which makes the result order-dependent and not
parallelizable.
*/
type SlugDeduper struct {
	used map[string]bool
}

func NewSlugDeduper() *SlugDeduper {
	return &SlugDeduper{used: make(map[string]bool)}
}

// Returns the candidate itself if it is still free, otherwise the candidate
// with the smallest suffix -2, -3, ... that is free.
func (d *SlugDeduper) Assign(candidate string) string {
	slug := candidate
	for n := 2; d.used[slug]; n++ {
		slug = fmt.Sprintf("%s-%d", candidate, n)
	}
	d.used[slug] = true
	return slug
}
