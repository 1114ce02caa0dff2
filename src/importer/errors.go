package importer

import (
	"errors"
	"fmt"
)

// The kinds of failure an import can end in. Use errors.Is against these.
var (
	ErrFetch         = errors.New("failed to fetch or parse the feed")
	ErrLockedFeed    = errors.New("feed is locked against importing")
	ErrValidation    = errors.New("feed contains invalid data")
	ErrAssetDownload = errors.New("failed to download a required asset")
	ErrPersistence   = errors.New("failed to persist imported data")
)

// Error is what Import returns on failure: the failure kind, the offending
// feed, and the underlying cause.
type Error struct {
	Kind    error
	FeedUrl string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("import of %s: %v", e.FeedUrl, e.Kind)
	}
	return fmt.Sprintf("import of %s: %v: %v", e.FeedUrl, e.Kind, e.Wrapped)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func importError(kind error, feedUrl string, wrapped error) error {
	return &Error{Kind: kind, FeedUrl: feedUrl, Wrapped: wrapped}
}
