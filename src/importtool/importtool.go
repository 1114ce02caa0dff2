package importtool

import (
	"context"
	"errors"
	"fmt"
	"os"

	"git.wavelength.fm/wvl/wvl/src/cli"
	"git.wavelength.fm/wvl/wvl/src/db"
	"git.wavelength.fm/wvl/wvl/src/importer"
	"git.wavelength.fm/wvl/wvl/src/logging"
	"git.wavelength.fm/wvl/wvl/src/models"
	"git.wavelength.fm/wvl/wvl/src/siteurl"
	"github.com/spf13/cobra"
)

func init() {
	var name string
	var language string
	var category string
	var slugPolicy string
	var descriptionPolicy string
	var season int
	var maxEpisodes int
	var forceRenumber bool
	var importedBy int

	importCommand := &cobra.Command{
		Use:   "import <feed url>",
		Short: "Import a podcast from its RSS feed",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Printf("You must provide a feed URL.\n\n")
				cmd.Usage()
				os.Exit(1)
			}
			feedUrl := args[0]

			if name == "" {
				fmt.Printf("You must provide a name for the new show.\n\n")
				cmd.Usage()
				os.Exit(1)
			}
			if models.GenerateSlug(name) != name {
				fmt.Printf("The show name must be url-safe: lowercase letters, digits, and dashes.\n\n")
				os.Exit(1)
			}

			ctx := context.Background()
			conn := db.NewConnPool()
			defer conn.Close()

			categoryID, err := db.QueryOneScalar[int](ctx, conn,
				`SELECT id FROM category WHERE code = $1`,
				category,
			)
			if err == db.NotFound {
				fmt.Printf("Unknown category %q. See the category table for valid codes.\n", category)
				os.Exit(1)
			} else if err != nil {
				panic(err)
			}

			in := importer.Input{
				FeedUrl:           feedUrl,
				Name:              name,
				LanguageCode:      language,
				CategoryID:        categoryID,
				SlugPolicy:        importer.SlugPolicy(slugPolicy),
				DescriptionPolicy: importer.DescriptionPolicy(descriptionPolicy),
				MaxEpisodes:       maxEpisodes,
				ForceRenumber:     forceRenumber,
				ImportedBy:        importedBy,
			}
			if cmd.Flags().Changed("season") {
				in.SeasonNumber = &season
			}

			showID, err := importer.Import(ctx, conn, in)
			if err != nil {
				logging.Error().Err(err).Msg("Import failed")
				switch {
				case errors.Is(err, importer.ErrLockedFeed):
					fmt.Println("This feed is locked by its owner and cannot be imported.")
				case errors.Is(err, importer.ErrFetch):
					fmt.Println("Could not fetch or parse the feed.")
				case errors.Is(err, importer.ErrAssetDownload):
					fmt.Println("Could not download a required asset from the feed's host.")
				case errors.Is(err, importer.ErrValidation):
					fmt.Println("The feed contains data we cannot import.")
				default:
					fmt.Println("The import failed; nothing was saved.")
				}
				os.Exit(1)
			}

			fmt.Printf("Imported show %d: %s\n", showID, siteurl.BuildShow(name))
		},
	}
	importCommand.Flags().StringVar(&name, "name", "", "URL-safe name for the new show (required)")
	importCommand.Flags().StringVar(&language, "language", "en", "Language code for the new show")
	importCommand.Flags().StringVar(&category, "category", "technology", "Category code for the new show")
	importCommand.Flags().StringVar(&slugPolicy, "slug-from", string(importer.SlugFromTitle), "Derive episode slugs from \"title\" or \"link\"")
	importCommand.Flags().StringVar(&descriptionPolicy, "description-from", string(importer.DescriptionFromDescription), "Episode description source: \"description\", \"content\", \"summary\", or \"subtitle_summary\"")
	importCommand.Flags().IntVar(&season, "season", 0, "Override the season number on all imported episodes")
	importCommand.Flags().IntVar(&maxEpisodes, "max-episodes", 0, "Only import the N most recent episodes (0 = all)")
	importCommand.Flags().BoolVar(&forceRenumber, "force-renumber", false, "Number episodes 1..N in import order, ignoring the feed's numbering")
	importCommand.Flags().IntVar(&importedBy, "by", 1, "Wavelength user id to record as the importer")

	cli.WvlCommand.AddCommand(importCommand)
}
