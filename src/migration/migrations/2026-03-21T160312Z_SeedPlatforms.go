package migrations

import (
	"context"
	"time"

	"git.wavelength.fm/wvl/wvl/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(SeedPlatforms{})
}

type SeedPlatforms struct{}

func (m SeedPlatforms) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 3, 21, 16, 3, 12, 0, time.UTC))
}

func (m SeedPlatforms) Name() string {
	return "SeedPlatforms"
}

func (m SeedPlatforms) Description() string {
	return "Seeds the platform registry with the platforms we recognize in feeds"
}

func (m SeedPlatforms) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO platform (slug, type, name, home_url, icon_name) VALUES
			('amazon', 'podcasting', 'Amazon Music', 'https://music.amazon.com/podcasts', 'amazon'),
			('antennapod', 'podcasting', 'AntennaPod', 'https://antennapod.org/', 'antennapod'),
			('apple-podcasts', 'podcasting', 'Apple Podcasts', 'https://podcasts.apple.com/', 'apple-podcasts'),
			('castbox', 'podcasting', 'Castbox', 'https://castbox.fm/', 'castbox'),
			('castopod', 'podcasting', 'Castopod', 'https://castopod.org/', 'castopod'),
			('deezer', 'podcasting', 'Deezer', 'https://www.deezer.com/', 'deezer'),
			('fountain', 'podcasting', 'Fountain', 'https://www.fountain.fm/', 'fountain'),
			('overcast', 'podcasting', 'Overcast', 'https://overcast.fm/', 'overcast'),
			('playerfm', 'podcasting', 'Player FM', 'https://player.fm/', 'playerfm'),
			('pocketcasts', 'podcasting', 'Pocket Casts', 'https://pocketcasts.com/', 'pocketcasts'),
			('podcastaddict', 'podcasting', 'Podcast Addict', 'https://podcastaddict.com/', 'podcastaddict'),
			('podcastindex', 'podcasting', 'Podcast Index', 'https://podcastindex.org/', 'podcastindex'),
			('podchaser', 'podcasting', 'Podchaser', 'https://www.podchaser.com/', 'podchaser'),
			('spotify', 'podcasting', 'Spotify', 'https://open.spotify.com/', 'spotify'),
			('youtube-music', 'podcasting', 'YouTube Music', 'https://music.youtube.com/', 'youtube-music'),

			('bluesky', 'social', 'Bluesky', 'https://bsky.app/', 'bluesky'),
			('discord', 'social', 'Discord', 'https://discord.com/', 'discord'),
			('facebook', 'social', 'Facebook', 'https://www.facebook.com/', 'facebook'),
			('instagram', 'social', 'Instagram', 'https://www.instagram.com/', 'instagram'),
			('linkedin', 'social', 'LinkedIn', 'https://www.linkedin.com/', 'linkedin'),
			('mastodon', 'social', 'Mastodon', 'https://joinmastodon.org/', 'mastodon'),
			('peertube', 'social', 'PeerTube', 'https://joinpeertube.org/', 'peertube'),
			('twitch', 'social', 'Twitch', 'https://www.twitch.tv/', 'twitch'),
			('twitter', 'social', 'Twitter', 'https://twitter.com/', 'twitter'),
			('youtube', 'social', 'YouTube', 'https://www.youtube.com/', 'youtube'),

			('buymeacoffee', 'funding', 'Buy Me a Coffee', 'https://www.buymeacoffee.com/', 'buymeacoffee'),
			('github-sponsors', 'funding', 'GitHub Sponsors', 'https://github.com/sponsors', 'github'),
			('ko-fi', 'funding', 'Ko-fi', 'https://ko-fi.com/', 'ko-fi'),
			('liberapay', 'funding', 'Liberapay', 'https://liberapay.com/', 'liberapay'),
			('opencollective', 'funding', 'Open Collective', 'https://opencollective.com/', 'opencollective'),
			('patreon', 'funding', 'Patreon', 'https://www.patreon.com/', 'patreon'),
			('paypal', 'funding', 'PayPal', 'https://www.paypal.com/', 'paypal');
	`)
	return err
}

func (m SeedPlatforms) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `DELETE FROM platform;`)
	return err
}
