package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		group     string
		role      string
		groupSlug string
		roleSlug  string
	}{
		{"known group and role", "Cast", "Host", "cast", "host"},
		{"case insensitive", "cast", "GUEST", "cast", "guest"},
		{"whitespace", " Cast ", " host ", "cast", "host"},
		{"known group, unknown role", "Cast", "Supreme Leader", "cast", ""},
		{"known group, no role", "Writing", "", "writing", ""},
		{"unknown group", "Accounting", "Host", "", ""},
		{"unknown group, role ignored", "Accounting", "", "", ""},
		{"no group", "", "Host", "", ""},
		{"nothing", "", "", "", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			groupSlug, roleSlug := Lookup(test.group, test.role)
			assert.Equal(t, test.groupSlug, groupSlug)
			assert.Equal(t, test.roleSlug, roleSlug)
		})
	}
}
