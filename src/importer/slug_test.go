package importer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugDeduper(t *testing.T) {
	d := NewSlugDeduper()

	assert.Equal(t, "intro", d.Assign("intro"))
	assert.Equal(t, "intro-2", d.Assign("intro"))
	assert.Equal(t, "intro-3", d.Assign("intro"))

	// Unrelated slugs are unaffected by earlier collisions.
	assert.Equal(t, "outro", d.Assign("outro"))

	// A candidate that happens to collide with a suffixed slug gets bumped
	// past it.
	assert.Equal(t, "intro-2-2", d.Assign("intro-2"))
}

func TestSlugDeduperMany(t *testing.T) {
	d := NewSlugDeduper()
	assert.Equal(t, "ep", d.Assign("ep"))
	for i := 2; i <= 50; i++ {
		assert.Equal(t, fmt.Sprintf("ep-%d", i), d.Assign("ep"))
	}
}
