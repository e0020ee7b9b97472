package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentIDAt(t *testing.T) {
	at := time.Date(2024, 1, 31, 15, 45, 2, 999_000_000, time.UTC)

	id := DocumentIDAt(at)

	assert.Equal(t, "20240131_154502", id)
}

func TestDocumentIDAt_SecondGranularityCollision(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	// Two allocations inside the same second collide on ID.
	assert.Equal(t, DocumentIDAt(base), DocumentIDAt(base.Add(500*time.Millisecond)))
	// The next second produces a distinct ID.
	assert.NotEqual(t, DocumentIDAt(base), DocumentIDAt(base.Add(time.Second)))
}

func TestRecordIDAt(t *testing.T) {
	at := time.Unix(1717236000, 250_000_000).UTC()

	id := RecordIDAt(at)

	// Unix seconds concatenated with the microsecond fraction, no punctuation.
	assert.Equal(t, "1717236000250000", id)
	assert.NotContains(t, id, ".")
}

func TestRecordIDAt_FinerThanDocumentID(t *testing.T) {
	base := time.Unix(1717236000, 0)

	a := RecordIDAt(base)
	b := RecordIDAt(base.Add(time.Millisecond))

	assert.NotEqual(t, a, b)
}

func TestDocumentID_UsesClock(t *testing.T) {
	id := DocumentID()

	assert.Len(t, id, 15)
	parsed, err := time.ParseInLocation("20060102_150405", id, time.Local)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Second)
}
