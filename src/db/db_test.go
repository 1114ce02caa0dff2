package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		var qb QueryBuilder
		qb.Add(`SELECT stuff FROM thing`)
		assert.Equal(t, "SELECT stuff FROM thing\n", qb.String())
		assert.Empty(t, qb.Args())
	})
	t.Run("sequential args", func(t *testing.T) {
		var qb QueryBuilder
		qb.Add(`SELECT stuff FROM thing WHERE foo = $?`, 3)
		qb.Add(`AND bar = $? AND baz = $?`, "hello", true)
		assert.Equal(t, "SELECT stuff FROM thing WHERE foo = $1\nAND bar = $2 AND baz = $3\n", qb.String())
		assert.Equal(t, []any{3, "hello", true}, qb.Args())
	})
	t.Run("wrong number of args", func(t *testing.T) {
		var qb QueryBuilder
		assert.Panics(t, func() {
			qb.Add(`WHERE foo = $? AND bar = $?`, 1)
		})
	})
}
