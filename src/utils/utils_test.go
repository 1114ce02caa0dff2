package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type MyError struct{}

func (err *MyError) Error() string {
	return "I want to get off MR BONES WILD RIDE"
}

func TestMust1(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		f := func() (int, error) { return 0, nil }
		a := Must1(f())
		assert.Equal(t, 0, a)
	})
	t.Run("non-nil error", func(t *testing.T) {
		f := func() (int, error) { return 0, &MyError{} }
		assert.Panics(t, func() {
			Must1(f())
		})
	})
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 3, OrDefault(3, 5))
	assert.Equal(t, 5, OrDefault(0, 5))
	assert.Equal(t, "feed", OrDefault("", "feed"))
}

func TestIntMin(t *testing.T) {
	assert.Equal(t, 2, IntMin(2, 5))
	assert.Equal(t, 2, IntMin(5, 2))
	assert.Equal(t, -1, IntMin(-1, 0))
}
