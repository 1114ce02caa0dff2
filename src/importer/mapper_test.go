package importer

import (
	"testing"

	"git.wavelength.fm/wvl/wvl/src/feeds"
	"git.wavelength.fm/wvl/wvl/src/models"
	"github.com/stretchr/testify/assert"
)

func TestMapAdvisory(t *testing.T) {
	tests := []struct {
		raw      string
		expected models.ParentalAdvisory
	}{
		{"yes", models.AdvisoryExplicit},
		{"true", models.AdvisoryExplicit},
		{"no", models.AdvisoryClean},
		{"false", models.AdvisoryClean},
		{"", models.AdvisoryUnspecified},
		{"clean", models.AdvisoryUnspecified},
		{"  yes\n", models.AdvisoryExplicit},
		{"YES", models.AdvisoryUnspecified},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			assert.Equal(t, test.expected, MapAdvisory(test.raw))
		})
	}
}

func TestMapTypes(t *testing.T) {
	assert.Equal(t, "serial", MapShowType("serial"))
	assert.Equal(t, "episodic", MapShowType(""))

	assert.Equal(t, "trailer", MapEpisodeType("trailer"))
	assert.Equal(t, "bonus", MapEpisodeType("bonus"))
	assert.Equal(t, "full", MapEpisodeType(""))
}

func TestMapLocation(t *testing.T) {
	assert.Equal(t, models.Location{}, MapLocation(nil))
	assert.Equal(t, models.Location{}, MapLocation(&feeds.Location{Name: "  "}))

	geo := "geo:30.2672,-97.7431"
	loc := MapLocation(&feeds.Location{Name: "Austin, TX", Geo: &geo})
	assert.Equal(t, "Austin, TX", *loc.LocationName)
	assert.Equal(t, geo, *loc.LocationGeo)
	assert.Nil(t, loc.LocationOsmID)
}

func TestSelectDescription(t *testing.T) {
	item := &feeds.Item{
		Description:    "<p>plain</p>",
		ContentEncoded: "<p>rich</p>",
		ItunesSubtitle: "sub",
		ItunesSummary:  "sum",
	}

	assert.Equal(t, "<p>plain</p>", SelectDescription(DescriptionFromDescription, item))
	assert.Equal(t, "<p>rich</p>", SelectDescription(DescriptionFromContent, item))
	assert.Equal(t, "sum", SelectDescription(DescriptionFromSummary, item))
	assert.Equal(t, "sub<br/>sum", SelectDescription(DescriptionFromSubtitleSummary, item))
}

func TestEpisodeSlugCandidate(t *testing.T) {
	item := &feeds.Item{
		Title: "Episode 1: Hello, World!",
		Link:  "https://example.com/podcast/ep-one",
	}

	assert.Equal(t, "episode-1-hello-world", EpisodeSlugCandidate(SlugFromTitle, item))
	assert.Equal(t, "ep-one", EpisodeSlugCandidate(SlugFromLinkBasename, item))

	// Items with nothing slugworthy still get a usable slug.
	assert.Equal(t, "episode", EpisodeSlugCandidate(SlugFromTitle, &feeds.Item{Title: "???"}))
	assert.Equal(t, "episode", EpisodeSlugCandidate(SlugFromLinkBasename, &feeds.Item{}))
}

func TestHtmlToMarkdown(t *testing.T) {
	md, err := HtmlToMarkdown("<p>Hello <strong>world</strong></p>")
	assert.Nil(t, err)
	assert.Equal(t, "Hello **world**", md)
}

func TestParseOrdinal(t *testing.T) {
	three := 3
	assert.Equal(t, &three, ParseOrdinal("3"))
	assert.Equal(t, &three, ParseOrdinal(" 3 "))
	assert.Nil(t, ParseOrdinal(""))
	assert.Nil(t, ParseOrdinal("abc"))
	assert.Nil(t, ParseOrdinal("-1"))
}
