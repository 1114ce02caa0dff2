package importer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"git.wavelength.fm/wvl/wvl/src/config"
	"git.wavelength.fm/wvl/wvl/src/oops"
	"github.com/tcolgate/mp3"
)

type downloadedFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

/*
Downloads a remote asset (cover image, avatar, audio enclosure), bounded by
the configured size cap. The feed host is untrusted; anything oversized or
unreachable is an error for the caller to classify.
*/
func downloadFile(ctx context.Context, client *http.Client, fileUrl string) (*downloadedFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileUrl, nil)
	if err != nil {
		return nil, oops.New(err, "failed to create download request")
	}
	req.Header.Set("User-Agent", config.Config.Import.UserAgent)

	res, err := client.Do(req)
	if err != nil {
		return nil, oops.New(err, "failed to download %s", fileUrl)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, oops.New(nil, "host returned status %d for %s", res.StatusCode, fileUrl)
	}

	maxBytes := config.Config.Import.MaxDownloadBytes
	content, err := io.ReadAll(io.LimitReader(res.Body, maxBytes+1))
	if err != nil {
		return nil, oops.New(err, "failed to read %s", fileUrl)
	}
	if int64(len(content)) > maxBytes {
		return nil, oops.New(nil, "%s exceeds the download size limit", fileUrl)
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	filename := ""
	if u, err := url.Parse(fileUrl); err == nil {
		filename = path.Base(u.Path)
	}

	return &downloadedFile{
		Content:     content,
		ContentType: contentType,
		Filename:    filename,
	}, nil
}

/*
Walks the mp3 frames of a downloaded enclosure and sums their durations.
Best effort: enclosures in other codecs, or mp3s we fail to decode, report a
duration of zero rather than failing the import.
*/
func audioDurationSeconds(content []byte, contentType string) int {
	if !strings.Contains(contentType, "mpeg") && !strings.Contains(contentType, "mp3") {
		return 0
	}

	decoder := mp3.NewDecoder(bytes.NewReader(content))
	var duration float64
	skipped := 0
	var f mp3.Frame
	for {
		if err := decoder.Decode(&f, &skipped); err != nil {
			if err != io.EOF {
				return 0
			}
			break
		}
		duration = duration + f.Duration().Seconds()
	}
	return int(duration)
}
