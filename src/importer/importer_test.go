package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"git.wavelength.fm/wvl/wvl/src/db"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/wvldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Import(context.Background(), nil, Input{FeedUrl: srv.URL})
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestImportMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not xml")
	}))
	defer srv.Close()

	_, err := Import(context.Background(), nil, Input{FeedUrl: srv.URL})
	assert.True(t, errors.Is(err, ErrFetch))
}

func TestImportLockedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
			<rss xmlns:podcast="https://podcastindex.org/namespace/1.0">
				<channel>
					<title>Locked Show</title>
					<podcast:locked>yes</podcast:locked>
				</channel>
			</rss>`)
	}))
	defer srv.Close()

	_, err := Import(context.Background(), nil, Input{FeedUrl: srv.URL})
	assert.True(t, errors.Is(err, ErrLockedFeed))

	var importErr *Error
	require.True(t, errors.As(err, &importErr))
	assert.Equal(t, srv.URL, importErr.FeedUrl)
}

func TestDedupeShowPlatforms(t *testing.T) {
	links := []models.ShowPlatform{
		{ShowID: 1, PlatformSlug: "patreon", LinkUrl: "https://patreon.com/nightfreq"},
		{ShowID: 1, PlatformSlug: "overcast", LinkUrl: "https://overcast.fm/nightfreq"},
		{ShowID: 1, PlatformSlug: "patreon", LinkUrl: "https://patreon.com/nightfreq/extras"},
	}
	deduped := dedupeShowPlatforms(links)
	require.Len(t, deduped, 2)
	// First declared link wins.
	assert.Equal(t, "patreon", deduped[0].PlatformSlug)
	assert.Equal(t, "https://patreon.com/nightfreq", deduped[0].LinkUrl)
	assert.Equal(t, "overcast", deduped[1].PlatformSlug)

	assert.Nil(t, dedupeShowPlatforms(nil))
}

// A single MPEG1 layer III frame at 128kbps / 44.1kHz: 417 bytes, roughly
// 26ms of audio. 80 of them make an enclosure just over two seconds long.
func testMp3(t *testing.T) []byte {
	frame := make([]byte, 417)
	frame[0], frame[1], frame[2] = 0xFF, 0xFB, 0x90
	var buf bytes.Buffer
	for i := 0; i < 80; i++ {
		buf.Write(frame)
	}
	return buf.Bytes()
}

func testJpeg(t *testing.T) []byte {
	var buf bytes.Buffer
	require.Nil(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 3)), nil))
	return buf.Bytes()
}

func TestAudioDurationSeconds(t *testing.T) {
	assert.Equal(t, 2, audioDurationSeconds(testMp3(t), "audio/mpeg"))
	assert.Equal(t, 0, audioDurationSeconds(testMp3(t), "audio/ogg"))
	assert.Equal(t, 0, audioDurationSeconds([]byte("not audio"), "audio/mpeg"))
}

/*
End-to-end import against a real database and object store, using the
configured dev stack: a postgres with migrations applied and the devs3
subcommand running. Set WVL_TEST_E2E to run it; skipped otherwise.
*/
func TestImportEndToEnd(t *testing.T) {
	if os.Getenv("WVL_TEST_E2E") == "" {
		t.Skip("set WVL_TEST_E2E to run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	conn := db.NewConn()
	defer conn.Close(ctx)

	jpegBytes := testJpeg(t)
	mp3Bytes := testMp3(t)
	assetSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cover.jpg", "/host.jpg", "/ep1.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write(jpegBytes)
		case "/ep1.mp3", "/ep2.mp3":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write(mp3Bytes)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer assetSrv.Close()

	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
			<rss xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"
			     xmlns:podcast="https://podcastindex.org/namespace/1.0">
				<channel>
					<title>Night Frequencies</title>
					<description>&lt;p&gt;A show about signals.&lt;/p&gt;</description>
					<itunes:image href="%[1]s/cover.jpg"/>
					<itunes:explicit>no</itunes:explicit>
					<podcast:person href="https://example.com/ada" img="%[1]s/host.jpg">Ada Marsh</podcast:person>
					<podcast:funding url="https://patreon.com/nightfreq" platform="Patreon"/>
					<podcast:funding url="https://patreon.com/nightfreq/extras" platform="Patreon"/>
					<item>
						<title>Signal Two</title>
						<guid>sig-2</guid>
						<pubDate>Tue, 02 Jan 2024 00:00:00 +0000</pubDate>
						<enclosure url="%[1]s/ep2.mp3" type="audio/mpeg" length="2"/>
						<description>&lt;p&gt;Second&lt;/p&gt;</description>
						<itunes:episode>13</itunes:episode>
						<itunes:season>2</itunes:season>
					</item>
					<item>
						<title>Signal One</title>
						<guid>sig-1</guid>
						<pubDate>Mon, 01 Jan 2024 00:00:00 +0000</pubDate>
						<enclosure url="%[1]s/ep1.mp3" type="audio/mpeg" length="2"/>
						<description>&lt;p&gt;First&lt;/p&gt;</description>
						<itunes:image href="%[1]s/ep1.jpg"/>
						<itunes:episode>12</itunes:episode>
						<itunes:season>2</itunes:season>
						<podcast:person group="cast" role="host">Ada Marsh</podcast:person>
					</item>
				</channel>
			</rss>`, assetSrv.URL)
	}))
	defer feedSrv.Close()

	showID, err := Import(ctx, conn, Input{
		FeedUrl:           feedSrv.URL,
		Name:              "nightfreq",
		LanguageCode:      "en",
		CategoryID:        1,
		SlugPolicy:        SlugFromTitle,
		DescriptionPolicy: DescriptionFromDescription,
		ImportedBy:        1,
	})
	require.Nil(t, err)

	show, err := wvldata.FetchShow(ctx, conn, showID)
	require.Nil(t, err)
	assert.Equal(t, "Night Frequencies", show.Title)
	assert.Equal(t, feedSrv.URL, *show.ImportedFeedUrl)

	cover, err := db.QueryOne[models.Asset](ctx, conn,
		`SELECT width, height FROM asset WHERE id = $1`,
		show.CoverAssetID,
	)
	require.Nil(t, err)
	assert.Equal(t, 4, cover.Width)
	assert.Equal(t, 3, cover.Height)

	episodes, err := wvldata.FetchShowEpisodes(ctx, conn, showID)
	require.Nil(t, err)
	require.Len(t, episodes, 2)
	// Oldest first, with the feed's own numbering trusted.
	assert.Equal(t, "signal-one", episodes[0].Slug)
	assert.Equal(t, "signal-two", episodes[1].Slug)
	require.NotNil(t, episodes[0].Number)
	require.NotNil(t, episodes[1].Number)
	assert.Equal(t, 12, *episodes[0].Number)
	assert.Equal(t, 13, *episodes[1].Number)
	require.NotNil(t, episodes[0].SeasonNumber)
	assert.Equal(t, 2, *episodes[0].SeasonNumber)
	assert.Equal(t, 2, episodes[0].DurationSeconds)
	assert.Equal(t, 2, episodes[1].DurationSeconds)
	assert.NotNil(t, episodes[0].CoverAssetID)
	assert.Nil(t, episodes[1].CoverAssetID)

	// Both funding links name the same platform; one link survives.
	platformLinks, err := db.QueryOneScalar[int](ctx, conn,
		`SELECT COUNT(*) FROM show_platform WHERE show_id = $1`,
		showID,
	)
	require.Nil(t, err)
	assert.Equal(t, 1, platformLinks)

	person, err := wvldata.FetchPersonByName(ctx, conn, "Ada Marsh")
	require.Nil(t, err)
	assert.Equal(t, "https://example.com/ada", *person.InformationUrl)
	assert.NotNil(t, person.AvatarAssetID)

	// Ada is credited once on the show and once on Signal One.
	showCredits, err := db.QueryOneScalar[int](ctx, conn,
		`SELECT COUNT(*) FROM show_person WHERE show_id = $1 AND person_id = $2`,
		showID, person.ID,
	)
	require.Nil(t, err)
	assert.Equal(t, 1, showCredits)
	episodeCredits, err := db.QueryOneScalar[int](ctx, conn,
		`SELECT COUNT(*) FROM episode_person WHERE show_id = $1 AND person_id = $2`,
		showID, person.ID,
	)
	require.Nil(t, err)
	assert.Equal(t, 1, episodeCredits)

	// Import the same feed again with renumbering and a season override.
	seasonThree := 3
	renumberedID, err := Import(ctx, conn, Input{
		FeedUrl:           feedSrv.URL,
		Name:              "nightfreq-redux",
		LanguageCode:      "en",
		CategoryID:        1,
		SlugPolicy:        SlugFromTitle,
		DescriptionPolicy: DescriptionFromDescription,
		SeasonNumber:      &seasonThree,
		ForceRenumber:     true,
		ImportedBy:        1,
	})
	require.Nil(t, err)

	renumbered, err := wvldata.FetchShowEpisodes(ctx, conn, renumberedID)
	require.Nil(t, err)
	require.Len(t, renumbered, 2)
	require.NotNil(t, renumbered[0].Number)
	require.NotNil(t, renumbered[1].Number)
	assert.Equal(t, 1, *renumbered[0].Number)
	assert.Equal(t, 2, *renumbered[1].Number)
	require.NotNil(t, renumbered[0].SeasonNumber)
	assert.Equal(t, 3, *renumbered[0].SeasonNumber)
	assert.Equal(t, 3, *renumbered[1].SeasonNumber)
}
