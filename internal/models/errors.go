package models

import "errors"

// ErrStaleSearch marks a search response that was superseded by a newer
// request before it completed. The response is discarded, not surfaced.
var ErrStaleSearch = errors.New("stale search response")
