package feeds

import (
	"context"
	"io"
	"net/http"
	"time"

	"git.wavelength.fm/wvl/wvl/src/config"
	"git.wavelength.fm/wvl/wvl/src/oops"
)

// Feed documents are small compared to media enclosures; 50 MB is already
// absurdly generous.
const maxFeedBytes = 50 * 1024 * 1024

func NewClient() *http.Client {
	return &http.Client{
		Timeout: time.Duration(config.Config.Import.FetchTimeoutSeconds) * time.Second,
	}
}

// Fetch retrieves and parses the feed document at the given URL.
func Fetch(ctx context.Context, client *http.Client, url string) (*RSS, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, oops.New(err, "failed to create feed request")
	}
	req.Header.Set("User-Agent", config.Config.Import.UserAgent)

	res, err := client.Do(req)
	if err != nil {
		return nil, oops.New(err, "failed to fetch feed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, oops.New(nil, "feed host returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxFeedBytes))
	if err != nil {
		return nil, oops.New(err, "failed to read feed body")
	}

	return Parse(body)
}
