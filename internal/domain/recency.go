package domain

import "time"

// RecencyRecord marks a word id as recently served.
//
// Timestamp is epoch milliseconds; zero means the time is unknown (records
// migrated from the legacy bare-id format) and such records never expire.
type RecencyRecord struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"ts"`
}

// HasTimestamp reports whether the record carries a known timestamp.
func (r RecencyRecord) HasTimestamp() bool {
	return r.Timestamp > 0
}

// Time returns the record timestamp as time.Time (zero time when unknown).
func (r RecencyRecord) Time() time.Time {
	if !r.HasTimestamp() {
		return time.Time{}
	}
	return time.UnixMilli(r.Timestamp).UTC()
}
