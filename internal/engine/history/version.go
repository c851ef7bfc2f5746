package history

import (
	"fmt"

	"github.com/google/uuid"
)

// VersionID identifies a history entry. IDs from one source are unique and
// sort in creation order.
type VersionID string

// String returns the ID.
func (v VersionID) String() string {
	return string(v)
}

// VersionSource allocates version IDs.
type VersionSource interface {
	Next() VersionID
}

// UUIDVersions allocates time-ordered UUIDv7 strings.
type UUIDVersions struct{}

// Next returns a new UUIDv7. If the clock cannot be read it falls back to a
// random UUIDv4, which is still unique but no longer ordered.
func (UUIDVersions) Next() VersionID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return VersionID(id.String())
}

// CounterVersions allocates IDs from a monotonic counter. IDs are
// zero-padded hex so they sort lexically in allocation order.
type CounterVersions struct {
	Prefix string
	n      uint64
}

// NewCounterVersions creates a counter source whose IDs start with prefix.
func NewCounterVersions(prefix string) *CounterVersions {
	return &CounterVersions{Prefix: prefix}
}

// Next returns the next ID.
func (c *CounterVersions) Next() VersionID {
	c.n++
	return VersionID(fmt.Sprintf("%s%016x", c.Prefix, c.n))
}
