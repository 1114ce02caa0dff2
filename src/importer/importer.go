/*
Package importer turns an externally hosted podcast RSS feed into a Wavelength
show with its episodes, credited people, and platform links, as one atomic
operation.

The import either commits everything or nothing: the show, its platform
links, all episodes, and every credit are written inside a single
transaction. People are shared across the whole site and are created through
a race-safe get-or-create, so two imports crediting the same name never
produce duplicates. Stored objects uploaded for a failed import are orphaned
in the bucket and harmless; no database row will reference them.
*/
package importer

import (
	"context"
	"net/http"
	"strings"

	"git.wavelength.fm/wvl/wvl/src/assets"
	"git.wavelength.fm/wvl/wvl/src/db"
	"git.wavelength.fm/wvl/wvl/src/feeds"
	"git.wavelength.fm/wvl/wvl/src/logging"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/oops"
	"git.wavelength.fm/wvl/wvl/src/siteurl"
	"git.wavelength.fm/wvl/wvl/src/taxonomy"
	"git.wavelength.fm/wvl/wvl/src/utils"
	"git.wavelength.fm/wvl/wvl/src/wvldata"
	"github.com/google/uuid"
)

type Input struct {
	FeedUrl string

	// URL-safe name for the new show; the basis of its canonical feed URL.
	// Validated by the caller.
	Name string

	LanguageCode string
	CategoryID   int

	SlugPolicy        SlugPolicy
	DescriptionPolicy DescriptionPolicy

	// When set, applied to every imported episode instead of the feed's own
	// season numbers.
	SeasonNumber *int

	// Caps the import to the N most recent items. Zero means no cap.
	MaxEpisodes int

	// When true, episode ordinals are assigned 1..N in import order instead
	// of trusting the feed's own numbering.
	ForceRenumber bool

	// The operator running the import, recorded on every created row.
	ImportedBy int
}

/*
Import runs the whole pipeline against one feed and returns the id of the
newly created show. On failure it returns an *Error whose Kind is one of the
Err* sentinels, and nothing is committed.
*/
func Import(ctx context.Context, dbConn db.ConnOrTx, in Input) (int, error) {
	log := logging.ExtractLogger(ctx).With().Str("feed", in.FeedUrl).Logger()
	ctx = logging.AttachLoggerToContext(&log, ctx)

	client := feeds.NewClient()

	log.Info().Msg("Fetching feed")
	rss, err := feeds.Fetch(ctx, client, in.FeedUrl)
	if err != nil {
		return 0, importError(ErrFetch, in.FeedUrl, err)
	}
	ch := &rss.Channel

	if ch.Locked() {
		return 0, importError(ErrLockedFeed, in.FeedUrl, nil)
	}

	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return 0, importError(ErrPersistence, in.FeedUrl, err)
	}
	defer tx.Rollback(ctx)

	showID, err := createShow(ctx, tx, client, ch, in)
	if err != nil {
		return 0, err
	}
	log.Info().Int("show", showID).Msg("Created show")

	if err := resolvePlatforms(ctx, tx, ch, showID, in); err != nil {
		return 0, err
	}

	for _, person := range ch.Persons() {
		if err := creditPerson(ctx, tx, client, person, showID, 0, in); err != nil {
			return 0, err
		}
	}

	// Feeds declare their newest item first. Import the capped-off most
	// recent items, oldest first, so slugs and ordinals fall out in
	// chronological order.
	items := ch.Items
	count := len(items)
	if in.MaxEpisodes > 0 {
		count = utils.IntMin(count, in.MaxEpisodes)
	}
	deduper := NewSlugDeduper()
	for i := count - 1; i >= 0; i-- {
		itemNumber := count - i
		if err := importEpisode(ctx, tx, client, &items[i], showID, itemNumber, deduper, in); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, importError(ErrPersistence, in.FeedUrl, err)
	}

	log.Info().Int("show", showID).Int("episodes", count).Msg("Import complete")
	return showID, nil
}

func createShow(ctx context.Context, tx db.ConnOrTx, client *http.Client, ch *feeds.Channel, in Input) (int, error) {
	coverUrl := ch.CoverUrl()
	if coverUrl == "" {
		return 0, importError(ErrValidation, in.FeedUrl, oops.New(nil, "feed declares no cover image"))
	}
	coverFile, err := downloadFile(ctx, client, coverUrl)
	if err != nil {
		return 0, importError(ErrAssetDownload, in.FeedUrl, err)
	}
	cover, err := assets.Create(ctx, tx, assets.CreateInput{
		Content:     coverFile.Content,
		Filename:    coverFile.Filename,
		ContentType: coverFile.ContentType,
		UploaderID:  &in.ImportedBy,
	})
	if err != nil {
		return 0, importError(ErrPersistence, in.FeedUrl, err)
	}

	descriptionHtml := ch.Description
	descriptionMarkdown, err := HtmlToMarkdown(descriptionHtml)
	if err != nil {
		return 0, importError(ErrValidation, in.FeedUrl, err)
	}

	show := models.Show{
		Name:                in.Name,
		Title:               ch.Title,
		DescriptionMarkdown: descriptionMarkdown,
		DescriptionHtml:     descriptionHtml,
		CoverAssetID:        cover.ID,
		LanguageCode:        in.LanguageCode,
		CategoryID:          in.CategoryID,
		ParentalAdvisory:    MapAdvisory(ch.ItunesExplicit),
		OwnerName:           ch.ItunesOwner.Name,
		OwnerEmail:          ch.ItunesOwner.Email,
		Publisher:           ch.ItunesAuthor,
		Type:                MapShowType(ch.ItunesType),
		Copyright:           ch.Copyright,
		IsBlocked:           ch.ItunesBlock == "yes",
		IsCompleted:         ch.ItunesComplete == "yes",
		Location:            MapLocation(ch.Location()),
		ImportedFeedUrl:     &in.FeedUrl,
		FeedUrl:             siteurl.BuildShowFeed(in.Name),
		CreatedBy:           in.ImportedBy,
		UpdatedBy:           in.ImportedBy,
	}

	showID, err := wvldata.CreateShow(ctx, tx, &show)
	if err != nil {
		return 0, importError(ErrPersistence, in.FeedUrl, err)
	}
	return showID, nil
}

var platformTypes = []string{
	models.PlatformTypePodcasting,
	models.PlatformTypeSocial,
	models.PlatformTypeFunding,
}

func resolvePlatforms(ctx context.Context, tx db.ConnOrTx, ch *feeds.Channel, showID int, in Input) error {
	log := logging.ExtractLogger(ctx)

	var links []models.ShowPlatform
	for _, platformType := range platformTypes {
		for _, declared := range ch.PlatformLinks(platformType) {
			slug := models.GenerateSlug(declared.Platform)
			if slug == "" {
				continue
			}
			_, err := wvldata.FetchPlatformBySlug(ctx, tx, slug)
			if err == db.NotFound {
				// Platforms we don't recognize are dropped, not errors.
				log.Debug().Str("platform", declared.Platform).Msg("Skipping unrecognized platform")
				continue
			} else if err != nil {
				return importError(ErrPersistence, in.FeedUrl, err)
			}

			var content *string
			if declared.ID != "" {
				content = &declared.ID
			}
			links = append(links, models.ShowPlatform{
				ShowID:       showID,
				PlatformSlug: slug,
				LinkUrl:      declared.Url,
				LinkContent:  content,
				IsVisible:    false,
			})
		}
	}

	if err := wvldata.CreateShowPlatforms(ctx, tx, dedupeShowPlatforms(links)); err != nil {
		return importError(ErrPersistence, in.FeedUrl, err)
	}
	return nil
}

// Feeds may declare the same platform more than once, e.g. several funding
// links on one service, or the same id under both namespace URLs. A show
// keeps one link per platform; the first declared wins.
func dedupeShowPlatforms(links []models.ShowPlatform) []models.ShowPlatform {
	seen := make(map[string]bool)
	deduped := links[:0]
	for _, link := range links {
		if seen[link.PlatformSlug] {
			continue
		}
		seen[link.PlatformSlug] = true
		deduped = append(deduped, link)
	}
	return deduped
}

/*
Resolves a credited person by full name and records the credit. episodeID of
zero means a show-level credit. New people get their avatar downloaded and
their handle derived from their name; existing people are never modified by
an import.
*/
func creditPerson(ctx context.Context, tx db.ConnOrTx, client *http.Client, declared feeds.Person, showID int, episodeID int, in Input) error {
	log := logging.ExtractLogger(ctx)

	fullName := strings.TrimSpace(declared.Name)
	if fullName == "" {
		log.Warn().Msg("Skipping person credit with no name")
		return nil
	}

	person, err := wvldata.FetchPersonByName(ctx, tx, fullName)
	if err == db.NotFound {
		var avatarID *uuid.UUID
		if declared.Img != "" {
			avatarFile, err := downloadFile(ctx, client, declared.Img)
			if err != nil {
				// An avatar is a nice-to-have; a dead link doesn't sink
				// the import.
				log.Warn().Err(err).Str("person", fullName).Msg("Failed to download avatar")
			} else {
				avatar, err := assets.Create(ctx, tx, assets.CreateInput{
					Content:     avatarFile.Content,
					Filename:    avatarFile.Filename,
					ContentType: avatarFile.ContentType,
					UploaderID:  &in.ImportedBy,
				})
				if err != nil {
					return importError(ErrPersistence, in.FeedUrl, err)
				}
				avatarID = &avatar.ID
			}
		}

		var infoUrl *string
		if declared.Href != "" {
			infoUrl = &declared.Href
		}

		person, err = wvldata.GetOrCreatePerson(ctx, tx, wvldata.PersonInput{
			FullName:       fullName,
			InformationUrl: infoUrl,
			AvatarAssetID:  avatarID,
			CreatedBy:      in.ImportedBy,
		})
		if err != nil {
			return importError(ErrPersistence, in.FeedUrl, err)
		}
	} else if err != nil {
		return importError(ErrPersistence, in.FeedUrl, err)
	}

	groupSlug, roleSlug := taxonomy.Lookup(declared.Group, declared.Role)

	if episodeID == 0 {
		err = wvldata.AddShowPerson(ctx, tx, showID, person.ID, groupSlug, roleSlug)
	} else {
		err = wvldata.AddEpisodePerson(ctx, tx, showID, episodeID, person.ID, groupSlug, roleSlug)
	}
	if err != nil {
		return importError(ErrPersistence, in.FeedUrl, err)
	}
	return nil
}

func importEpisode(ctx context.Context, tx db.ConnOrTx, client *http.Client, item *feeds.Item, showID int, itemNumber int, deduper *SlugDeduper, in Input) error {
	log := logging.ExtractLogger(ctx)

	publishedAt, err := feeds.ParsePubDate(item.PubDate)
	if err != nil {
		return importError(ErrValidation, in.FeedUrl, err)
	}

	if item.Enclosure.Url == "" {
		return importError(ErrValidation, in.FeedUrl, oops.New(nil, "item %q has no audio enclosure", item.Title))
	}

	slug := deduper.Assign(EpisodeSlugCandidate(in.SlugPolicy, item))

	audioFile, err := downloadFile(ctx, client, item.Enclosure.Url)
	if err != nil {
		return importError(ErrAssetDownload, in.FeedUrl, err)
	}
	audio, err := assets.Create(ctx, tx, assets.CreateInput{
		Content:     audioFile.Content,
		Filename:    audioFile.Filename,
		ContentType: audioFile.ContentType,
		UploaderID:  &in.ImportedBy,
	})
	if err != nil {
		return importError(ErrPersistence, in.FeedUrl, err)
	}

	var coverID *uuid.UUID
	if item.CoverUrl() != "" {
		coverFile, err := downloadFile(ctx, client, item.CoverUrl())
		if err != nil {
			// Episode covers are optional; the show cover stands in.
			log.Warn().Err(err).Str("episode", item.Title).Msg("Failed to download episode cover")
		} else {
			cover, err := assets.Create(ctx, tx, assets.CreateInput{
				Content:     coverFile.Content,
				Filename:    coverFile.Filename,
				ContentType: coverFile.ContentType,
				UploaderID:  &in.ImportedBy,
			})
			if err != nil {
				return importError(ErrPersistence, in.FeedUrl, err)
			}
			coverID = &cover.ID
		}
	}

	descriptionHtml := SelectDescription(in.DescriptionPolicy, item)
	descriptionMarkdown, err := HtmlToMarkdown(descriptionHtml)
	if err != nil {
		return importError(ErrValidation, in.FeedUrl, err)
	}

	number := ParseOrdinal(item.ItunesEpisode)
	if in.ForceRenumber {
		number = &itemNumber
	}

	season := ParseOrdinal(item.ItunesSeason)
	if in.SeasonNumber != nil {
		season = in.SeasonNumber
	}

	var guid *string
	if item.Guid != "" {
		guid = &item.Guid
	}

	episode := models.Episode{
		ShowID:              showID,
		Guid:                guid,
		Title:               item.Title,
		Slug:                slug,
		AudioAssetID:        audio.ID,
		DurationSeconds:     audioDurationSeconds(audioFile.Content, audioFile.ContentType),
		DescriptionMarkdown: descriptionMarkdown,
		DescriptionHtml:     descriptionHtml,
		CoverAssetID:        coverID,
		ParentalAdvisory:    MapAdvisory(item.ItunesExplicit),
		Number:              number,
		SeasonNumber:        season,
		Type:                MapEpisodeType(item.ItunesEpisodeType),
		IsBlocked:           item.ItunesBlock == "yes",
		Location:            MapLocation(item.Location()),
		PublishedAt:         publishedAt,
		CreatedBy:           in.ImportedBy,
		UpdatedBy:           in.ImportedBy,
	}

	episodeID, err := wvldata.CreateEpisode(ctx, tx, &episode)
	if err != nil {
		return importError(ErrPersistence, in.FeedUrl, err)
	}

	for _, person := range item.Persons() {
		if err := creditPerson(ctx, tx, client, person, showID, episodeID, in); err != nil {
			return err
		}
	}

	return nil
}
