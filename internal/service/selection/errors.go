package selection

import "errors"

// ErrNoCandidate indicates that no candidate in the batch yielded a
// dictionary entry.
var ErrNoCandidate = errors.New("no candidate yielded a dictionary entry")
