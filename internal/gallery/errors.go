package gallery

import (
	"errors"
	"fmt"

	"github.com/skyframe/skyframe/internal/feed"
)

var (
	// ErrInputShape is returned when a feed payload is not a list of items.
	ErrInputShape = errors.New("media feed is not a list")
	// ErrUnresolvableMedia marks an item dropped from the gallery.
	ErrUnresolvableMedia = errors.New("item has no renderable media")
)

const errorPrefix = "Error loading data: "

// MessageFor maps a failure to the text shown in place of the gallery.
func MessageFor(err error) string {
	var netErr *feed.NetworkError
	var parseErr *feed.ParseError

	switch {
	case errors.As(err, &netErr):
		if netErr.StatusCode == 0 {
			return errorPrefix + "could not reach the media feed"
		}
		return fmt.Sprintf("%sNetwork response was not ok: %d", errorPrefix, netErr.StatusCode)
	case errors.As(err, &parseErr):
		return errorPrefix + "the media feed returned malformed data"
	case errors.Is(err, ErrInputShape):
		return errorPrefix + "the media feed returned an unexpected format"
	default:
		return errorPrefix + "something went wrong"
	}
}
