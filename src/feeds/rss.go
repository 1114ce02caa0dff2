// Package feeds retrieves and parses podcast RSS feeds, including the three
// extension vocabularies we understand: iTunes metadata, the podcast
// namespace, and content encoding. Extension data is optional everywhere;
// accessors return zero values when a vocabulary is absent, never errors.
package feeds

import (
	"encoding/xml"

	"git.wavelength.fm/wvl/wvl/src/oops"
)

// The podcast namespace has been published under two URLs over the years.
// Feeds in the wild use both, so every podcast-namespace field is declared
// twice and merged by the accessors.
const (
	NSItunes        = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	NSPodcast       = "https://podcastindex.org/namespace/1.0"
	NSPodcastLegacy = "https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md"
	NSContent       = "http://purl.org/rss/1.0/modules/content/"
)

type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Channel Channel  `xml:"channel"`
}

type Channel struct {
	Title       string       `xml:"title"`
	Link        string       `xml:"link"`
	Description string       `xml:"description"`
	Copyright   string       `xml:"copyright"`
	Image       ChannelImage `xml:"image"`
	Items       []Item       `xml:"item"`

	ItunesImage    ItunesImage `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd image"`
	ItunesExplicit string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd explicit"`
	ItunesAuthor   string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd author"`
	ItunesType     string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd type"`
	ItunesBlock    string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd block"`
	ItunesComplete string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd complete"`
	ItunesOwner    ItunesOwner `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd owner"`
	ItunesSummary  string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd summary"`
	ItunesSubtitle string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd subtitle"`

	PodcastLocked       string         `xml:"https://podcastindex.org/namespace/1.0 locked"`
	PodcastLockedLegacy string         `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md locked"`
	PodcastLoc          *Location      `xml:"https://podcastindex.org/namespace/1.0 location"`
	PodcastLocLegacy    *Location      `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md location"`
	PodcastPersons      []Person       `xml:"https://podcastindex.org/namespace/1.0 person"`
	PodcastPersonsLeg   []Person       `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md person"`
	PodcastIDs          []PlatformLink `xml:"https://podcastindex.org/namespace/1.0 id"`
	PodcastIDsLegacy    []PlatformLink `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md id"`
	PodcastSocials      []PlatformLink `xml:"https://podcastindex.org/namespace/1.0 social"`
	PodcastSocialsLeg   []PlatformLink `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md social"`
	PodcastFundings     []PlatformLink `xml:"https://podcastindex.org/namespace/1.0 funding"`
	PodcastFundingsLeg  []PlatformLink `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md funding"`
}

type ChannelImage struct {
	Url string `xml:"url"`
}

type ItunesImage struct {
	Href string `xml:"href,attr"`
}

type ItunesOwner struct {
	Name  string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd name"`
	Email string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd email"`
}

// <podcast:location geo="..." osm="...">Name</podcast:location>. The geo and
// osm attributes are independently optional.
type Location struct {
	Name string  `xml:",chardata"`
	Geo  *string `xml:"geo,attr"`
	Osm  *string `xml:"osm,attr"`
}

// <podcast:person role="host" group="cast" href="..." img="...">Jane Doe</podcast:person>
type Person struct {
	Name  string `xml:",chardata"`
	Group string `xml:"group,attr"`
	Role  string `xml:"role,attr"`
	Href  string `xml:"href,attr"`
	Img   string `xml:"img,attr"`
}

// Shared shape of <podcast:id>, <podcast:social> and <podcast:funding>.
type PlatformLink struct {
	Platform string `xml:"platform,attr"`
	Url      string `xml:"url,attr"`
	ID       string `xml:"id,attr"`
}

type Item struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Guid        string    `xml:"guid"`
	Description string    `xml:"description"`
	Enclosure   Enclosure `xml:"enclosure"`
	PubDate     string    `xml:"pubDate"`

	ContentEncoded string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`

	ItunesImage       ItunesImage `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd image"`
	ItunesExplicit    string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd explicit"`
	ItunesEpisodeType string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd episodeType"`
	ItunesEpisode     string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd episode"`
	ItunesSeason      string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd season"`
	ItunesBlock       string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd block"`
	ItunesSummary     string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd summary"`
	ItunesSubtitle    string      `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd subtitle"`

	PodcastLoc        *Location `xml:"https://podcastindex.org/namespace/1.0 location"`
	PodcastLocLegacy  *Location `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md location"`
	PodcastPersons    []Person  `xml:"https://podcastindex.org/namespace/1.0 person"`
	PodcastPersonsLeg []Person  `xml:"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md person"`
}

type Enclosure struct {
	Url    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

func Parse(data []byte) (*RSS, error) {
	var rss RSS
	if err := xml.Unmarshal(data, &rss); err != nil {
		return nil, oops.New(err, "failed to parse feed document")
	}
	return &rss, nil
}

// Feeds can opt out of being republished elsewhere. Importing a locked feed
// must be refused.
func (c *Channel) Locked() bool {
	return c.PodcastLocked == "yes" || c.PodcastLockedLegacy == "yes"
}

func (c *Channel) Location() *Location {
	if c.PodcastLoc != nil {
		return c.PodcastLoc
	}
	return c.PodcastLocLegacy
}

func (c *Channel) Persons() []Person {
	return append(append([]Person{}, c.PodcastPersons...), c.PodcastPersonsLeg...)
}

func (c *Channel) PlatformLinks(platformType string) []PlatformLink {
	switch platformType {
	case "podcasting":
		return append(append([]PlatformLink{}, c.PodcastIDs...), c.PodcastIDsLegacy...)
	case "social":
		return append(append([]PlatformLink{}, c.PodcastSocials...), c.PodcastSocialsLeg...)
	case "funding":
		return append(append([]PlatformLink{}, c.PodcastFundings...), c.PodcastFundingsLeg...)
	}
	return nil
}

// The channel cover: the iTunes image when declared, otherwise the plain RSS
// <image><url>. May be empty.
func (c *Channel) CoverUrl() string {
	if c.ItunesImage.Href != "" {
		return c.ItunesImage.Href
	}
	return c.Image.Url
}

func (i *Item) Location() *Location {
	if i.PodcastLoc != nil {
		return i.PodcastLoc
	}
	return i.PodcastLocLegacy
}

func (i *Item) Persons() []Person {
	return append(append([]Person{}, i.PodcastPersons...), i.PodcastPersonsLeg...)
}

func (i *Item) CoverUrl() string {
	return i.ItunesImage.Href
}
