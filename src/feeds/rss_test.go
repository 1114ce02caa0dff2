package feeds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"
	xmlns:podcast="https://podcastindex.org/namespace/1.0"
	xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Night Frequencies</title>
	<link>https://night.example.com</link>
	<description>&lt;p&gt;Late night radio stories.&lt;/p&gt;</description>
	<copyright>2023 Night Frequencies</copyright>
	<image><url>https://night.example.com/fallback.jpg</url></image>
	<itunes:image href="https://night.example.com/cover.jpg"/>
	<itunes:explicit>yes</itunes:explicit>
	<itunes:author>Night Media</itunes:author>
	<itunes:type>serial</itunes:type>
	<itunes:owner>
		<itunes:name>Ada Operator</itunes:name>
		<itunes:email>ada@night.example.com</itunes:email>
	</itunes:owner>
	<podcast:locked>no</podcast:locked>
	<podcast:location geo="geo:30.2672,-97.7431" osm="R113314">Austin, TX</podcast:location>
	<podcast:person group="cast" role="host" href="https://ada.example.com" img="https://ada.example.com/a.jpg">Ada Operator</podcast:person>
	<podcast:id platform="overcast" url="https://overcast.fm/p1" id="p1"/>
	<podcast:funding platform="patreon" url="https://patreon.com/night"/>
	<item>
		<title>Signal One</title>
		<link>https://night.example.com/episodes/signal-one</link>
		<guid>urn:night:ep1</guid>
		<description>&lt;p&gt;The first signal.&lt;/p&gt;</description>
		<enclosure url="https://night.example.com/audio/ep1.mp3" length="123456" type="audio/mpeg"/>
		<pubDate>Tue, 03 Jan 2023 10:00:00 +0000</pubDate>
		<content:encoded>&lt;p&gt;The first signal, in full.&lt;/p&gt;</content:encoded>
		<itunes:explicit>no</itunes:explicit>
		<itunes:episodeType>full</itunes:episodeType>
		<itunes:episode>1</itunes:episode>
		<itunes:season>2</itunes:season>
		<itunes:summary>The first signal.</itunes:summary>
		<itunes:subtitle>Ep one.</itunes:subtitle>
		<podcast:person group="cast" role="guest">Grace Guest</podcast:person>
	</item>
	<item>
		<title>Signal Two</title>
		<link>https://night.example.com/episodes/signal-two</link>
		<enclosure url="https://night.example.com/audio/ep2.mp3" length="234567" type="audio/mpeg"/>
		<pubDate>Tue, 10 Jan 2023 10:00:00 +0000</pubDate>
	</item>
</channel>
</rss>`

func TestParseChannel(t *testing.T) {
	rss, err := Parse([]byte(sampleFeed))
	require.NoError(t, err)

	ch := &rss.Channel
	assert.Equal(t, "Night Frequencies", ch.Title)
	assert.Equal(t, "2023 Night Frequencies", ch.Copyright)
	assert.Equal(t, "Night Media", ch.ItunesAuthor)
	assert.Equal(t, "serial", ch.ItunesType)
	assert.Equal(t, "yes", ch.ItunesExplicit)
	assert.Equal(t, "Ada Operator", ch.ItunesOwner.Name)
	assert.Equal(t, "ada@night.example.com", ch.ItunesOwner.Email)
	assert.False(t, ch.Locked())
	assert.Equal(t, "https://night.example.com/cover.jpg", ch.CoverUrl())

	loc := ch.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "Austin, TX", loc.Name)
	require.NotNil(t, loc.Geo)
	assert.Equal(t, "geo:30.2672,-97.7431", *loc.Geo)
	require.NotNil(t, loc.Osm)
	assert.Equal(t, "R113314", *loc.Osm)

	people := ch.Persons()
	require.Len(t, people, 1)
	assert.Equal(t, "Ada Operator", people[0].Name)
	assert.Equal(t, "cast", people[0].Group)
	assert.Equal(t, "host", people[0].Role)
	assert.Equal(t, "https://ada.example.com", people[0].Href)

	assert.Len(t, ch.PlatformLinks("podcasting"), 1)
	assert.Len(t, ch.PlatformLinks("social"), 0)
	require.Len(t, ch.PlatformLinks("funding"), 1)
	assert.Equal(t, "patreon", ch.PlatformLinks("funding")[0].Platform)
}

func TestParseItems(t *testing.T) {
	rss, err := Parse([]byte(sampleFeed))
	require.NoError(t, err)

	items := rss.Channel.Items
	require.Len(t, items, 2)

	first := &items[0]
	assert.Equal(t, "Signal One", first.Title)
	assert.Equal(t, "urn:night:ep1", first.Guid)
	assert.Equal(t, "https://night.example.com/audio/ep1.mp3", first.Enclosure.Url)
	assert.Equal(t, "audio/mpeg", first.Enclosure.Type)
	assert.Equal(t, "<p>The first signal, in full.</p>", first.ContentEncoded)
	assert.Equal(t, "no", first.ItunesExplicit)
	assert.Equal(t, "full", first.ItunesEpisodeType)
	assert.Equal(t, "1", first.ItunesEpisode)
	assert.Equal(t, "2", first.ItunesSeason)
	require.Len(t, first.Persons(), 1)
	assert.Equal(t, "Grace Guest", first.Persons()[0].Name)

	// Extension vocabularies are all optional; a bare item parses fine.
	second := &items[1]
	assert.Equal(t, "Signal Two", second.Title)
	assert.Empty(t, second.Guid)
	assert.Empty(t, second.ItunesExplicit)
	assert.Nil(t, second.Location())
	assert.Empty(t, second.Persons())
	assert.Empty(t, second.CoverUrl())
}

func TestLegacyPodcastNamespace(t *testing.T) {
	legacy := `<?xml version="1.0"?>
<rss version="2.0" xmlns:podcast="https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md">
<channel>
	<title>Old Namespace</title>
	<podcast:locked>yes</podcast:locked>
	<podcast:person group="cast" role="host">Old Host</podcast:person>
</channel>
</rss>`
	rss, err := Parse([]byte(legacy))
	require.NoError(t, err)
	assert.True(t, rss.Channel.Locked())
	require.Len(t, rss.Channel.Persons(), 1)
	assert.Equal(t, "Old Host", rss.Channel.Persons()[0].Name)
}

func TestParsePubDate(t *testing.T) {
	expected := time.Date(2023, 1, 3, 10, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"Tue, 03 Jan 2023 10:00:00 +0000",
		"Tue, 3 Jan 2023 10:00:00 +0000",
		"2023-01-03T10:00:00Z",
	} {
		parsed, err := ParsePubDate(raw)
		if assert.NoError(t, err, raw) {
			assert.True(t, parsed.Equal(expected), raw)
		}
	}

	_, err := ParsePubDate("")
	assert.Error(t, err)
	_, err = ParsePubDate("the third of january")
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("this is not xml"))
	assert.Error(t, err)
}
