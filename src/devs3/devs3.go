package devs3

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"git.wavelength.fm/wvl/wvl/src/cli"
	"git.wavelength.fm/wvl/wvl/src/config"
	"git.wavelength.fm/wvl/wvl/src/utils"
	"github.com/spf13/cobra"
)

// A bare-bones S3 stand-in for local dev, serving the configured Spaces
// endpoint out of a folder on disk. Just enough of the API for our uploads
// and downloads; anything else panics.

func init() {
	s3Command := &cobra.Command{
		Use:   "devs3 [storage folder]",
		Short: "Run a local s3 server that stores in the filesystem",
		Run: func(cmd *cobra.Command, args []string) {
			targetFolder := "./tmp"
			if len(args) > 0 {
				targetFolder = args[0]
			}
			err := os.MkdirAll(targetFolder, fs.ModePerm)
			if err != nil {
				panic(err)
			}

			handler := func(w http.ResponseWriter, r *http.Request) {
				bucket, key := bucketKey(r)

				bodyBytes, err := io.ReadAll(r.Body)
				if err != nil {
					panic(err)
				}
				fmt.Println("Bucket:", bucket, "key:", key, "method:", r.Method, "len(body):", len(bodyBytes))

				switch r.Method {
				case http.MethodPut:
					w.Header().Set("Location", fmt.Sprintf("/%s", bucket))
					err := os.MkdirAll(fmt.Sprintf("%s/%s", targetFolder, bucket), fs.ModePerm)
					if err != nil {
						panic(err)
					}
					if key != "" {
						err = os.WriteFile(fmt.Sprintf("%s/%s/%s", targetFolder, bucket, key), bodyBytes, fs.ModePerm)
						if err != nil {
							panic(err)
						}
					}
				case http.MethodGet:
					fileBytes, err := os.ReadFile(fmt.Sprintf("%s/%s/%s", targetFolder, bucket, key))
					if err != nil {
						w.WriteHeader(http.StatusNotFound)
						return
					}
					w.Write(fileBytes)
				default:
					panic("Unimplemented method!")
				}
			}

			endpoint := utils.Must1(url.Parse(config.Config.Spaces.Endpoint))
			addr := ":" + endpoint.Port()

			http.HandleFunc("/", handler)
			fmt.Println("Serving s3 on", addr)
			log.Fatal(http.ListenAndServe(addr, nil))
		},
	}

	cli.WvlCommand.AddCommand(s3Command)
}

// Object keys contain slashes, but we store objects flat within each
// bucket's folder.
func bucketKey(r *http.Request) (string, string) {
	slashIdx := strings.IndexByte(r.URL.Path[1:], '/')
	if slashIdx == -1 {
		return r.URL.Path[1:], ""
	} else {
		return r.URL.Path[1 : 1+slashIdx], strings.Replace(r.URL.Path[2+slashIdx:], "/", "~", -1)
	}
}
