package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "cool_filename.txt.wow", SanitizeFilename("cool filename.txt.wow"))
	assert.Equal(t, "newlines_aretotallylegal", SanitizeFilename("newlines\naretotallylegal"))
	assert.Equal(t, "unnamed", SanitizeFilename(""))
	assert.Equal(t, "episode-42.mp3", SanitizeFilename("episode-42.mp3"))
}

func TestAssetKey(t *testing.T) {
	assert.Equal(t, "abc/cover.jpg", AssetKey("abc", "cover.jpg"))
}
