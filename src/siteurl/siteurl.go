package siteurl

import (
	"net/url"

	"git.wavelength.fm/wvl/wvl/src/config"
)

type Q struct {
	Name  string
	Value string
}

func Url(path string, query []Q) string {
	result := config.Config.BaseUrl + "/" + trim(path)
	if q := encodeQuery(query); q != "" {
		result += "?" + q
	}
	return result
}

func trim(path string) string {
	if path[0] == '/' {
		return path[1:]
	}
	return path
}

func encodeQuery(query []Q) string {
	result := url.Values{}
	for _, q := range query {
		result.Set(q.Name, q.Value)
	}
	return result.Encode()
}

func BuildShow(name string) string {
	return Url("/@"+name, nil)
}

// The canonical feed URL we will serve for a show. Imported shows get this as
// their new feed url.
func BuildShowFeed(name string) string {
	return Url("/@"+name+"/feed.xml", nil)
}

func BuildAsset(s3Key string) string {
	return Url("/assets/"+s3Key, nil)
}
