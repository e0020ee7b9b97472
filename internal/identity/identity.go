// Package identity mints timestamp-derived identifiers for documents,
// folders and share grants. IDs are a function of the wall clock only:
// two allocations within the same tick can collide, and callers are
// expected to tolerate that.
package identity

import (
	"strconv"
	"strings"
	"time"
)

// documentIDLayout truncates to one-second resolution, e.g. 20240131_154502.
const documentIDLayout = "20060102_150405"

// DocumentID returns a new document identifier from the current clock.
// Uniqueness holds only to one-second resolution.
func DocumentID() string {
	return DocumentIDAt(time.Now())
}

// DocumentIDAt is the pure variant of DocumentID.
func DocumentIDAt(t time.Time) string {
	return t.Format(documentIDLayout)
}

// RecordID returns a new identifier for folders and share grants: the unix
// timestamp with microsecond fraction, decimal point stripped. Finer than a
// document ID but still not guaranteed unique.
func RecordID() string {
	return RecordIDAt(time.Now())
}

// RecordIDAt is the pure variant of RecordID.
func RecordIDAt(t time.Time) string {
	ts := strconv.FormatFloat(float64(t.UnixNano())/1e9, 'f', 6, 64)
	return strings.Replace(ts, ".", "", 1)
}
