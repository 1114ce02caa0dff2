package siteurl

import (
	"strings"
	"testing"

	"git.wavelength.fm/wvl/wvl/src/config"
	"github.com/stretchr/testify/assert"
)

func TestBuildShowFeed(t *testing.T) {
	got := BuildShowFeed("night-frequencies")
	assert.True(t, strings.HasPrefix(got, config.Config.BaseUrl))
	assert.True(t, strings.HasSuffix(got, "/@night-frequencies/feed.xml"))
}

func TestUrlTrimsLeadingSlash(t *testing.T) {
	assert.Equal(t, Url("foo/bar", nil), Url("/foo/bar", nil))
}

func TestQuery(t *testing.T) {
	got := Url("/shows", []Q{{"page", "2"}})
	assert.True(t, strings.HasSuffix(got, "/shows?page=2"))
}
