package importer

import (
	"path"
	"strconv"
	"strings"

	"git.wavelength.fm/wvl/wvl/src/feeds"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/oops"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown"
)

// Where an episode's stored description comes from.
type DescriptionPolicy string

const (
	DescriptionFromDescription     DescriptionPolicy = "description"
	DescriptionFromContent         DescriptionPolicy = "content"
	DescriptionFromSummary         DescriptionPolicy = "summary"
	DescriptionFromSubtitleSummary DescriptionPolicy = "subtitle_summary"
)

// Where an episode's slug is derived from.
type SlugPolicy string

const (
	SlugFromTitle        SlugPolicy = "title"
	SlugFromLinkBasename SlugPolicy = "link"
)

/*
Maps a feed's explicit indicator to our tri-state advisory. Only the values
iTunes documents are recognized; anything else, including absence, is
"unspecified" rather than an error.
*/
func MapAdvisory(raw string) models.ParentalAdvisory {
	switch strings.TrimSpace(raw) {
	case "yes", "true":
		return models.AdvisoryExplicit
	case "no", "false":
		return models.AdvisoryClean
	default:
		return models.AdvisoryUnspecified
	}
}

// Show type defaults to episodic; declared values are trusted strings, not
// validated against an enum.
func MapShowType(raw string) string {
	if raw == "" {
		return models.ShowTypeEpisodic
	}
	return raw
}

// Episode type defaults to full; same trust model as MapShowType.
func MapEpisodeType(raw string) string {
	if raw == "" {
		return models.EpisodeTypeFull
	}
	return raw
}

/*
Maps a feed location to our location triple. A location only exists if it has
a name; the geo coordinate and OSM id are each optional on their own.
*/
func MapLocation(loc *feeds.Location) models.Location {
	if loc == nil || strings.TrimSpace(loc.Name) == "" {
		return models.Location{}
	}
	name := strings.TrimSpace(loc.Name)
	return models.Location{
		LocationName:  &name,
		LocationGeo:   loc.Geo,
		LocationOsmID: loc.Osm,
	}
}

// Picks the HTML that becomes an episode's description, per the caller's
// policy.
func SelectDescription(policy DescriptionPolicy, item *feeds.Item) string {
	switch policy {
	case DescriptionFromContent:
		return item.ContentEncoded
	case DescriptionFromSummary:
		return item.ItunesSummary
	case DescriptionFromSubtitleSummary:
		return item.ItunesSubtitle + "<br/>" + item.ItunesSummary
	default:
		return item.Description
	}
}

// Derives the slug candidate for an episode, before deduplication.
func EpisodeSlugCandidate(policy SlugPolicy, item *feeds.Item) string {
	var raw string
	if policy == SlugFromLinkBasename {
		raw = path.Base(item.Link)
	} else {
		raw = item.Title
	}
	slug := models.GenerateSlug(raw)
	if slug == "" {
		// Untitled, link-less items still need a slug.
		slug = "episode"
	}
	return slug
}

/*
Converts feed HTML to the Markdown form we store alongside it. The original
HTML is kept verbatim; this is the editable representation.
*/
func HtmlToMarkdown(html string) (string, error) {
	converter := htmltomarkdown.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", oops.New(err, "failed to convert feed HTML to markdown")
	}
	return markdown, nil
}

// Parses an iTunes episode/season number. Feeds put all kinds of junk here;
// anything non-numeric is treated as absent.
func ParseOrdinal(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
