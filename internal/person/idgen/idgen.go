// Package idgen mints person identifiers.
package idgen

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/google/uuid"

	id "pessoas/pkg/domain"
)

// Generator produces unique person identifiers. Implementations must be
// safe for concurrent use and must never return the same id twice.
type Generator interface {
	NewID() id.PersonID
}

// NewV7 returns the production generator. Ids are RFC 9562 version 7 UUIDs:
// a millisecond timestamp followed by a sequence that google/uuid keeps
// monotonic under its own lock, so ids sort by creation time.
func NewV7() Generator {
	return v7Generator{}
}

type v7Generator struct{}

// NewID panics if the random source fails, since no id can be minted without it.
func (v7Generator) NewID() id.PersonID {
	return id.PersonID(uuid.Must(uuid.NewV7()))
}

// Func adapts a plain function to Generator.
type Func func() id.PersonID

func (f Func) NewID() id.PersonID { return f() }

// NewSequential returns a deterministic generator whose ids carry an
// increasing counter in their last eight bytes, starting at 1. The ids are
// formatted as version 7 so they sort the same way production ids do.
func NewSequential() Generator {
	return &sequentialGenerator{}
}

type sequentialGenerator struct {
	next atomic.Uint64
}

func (g *sequentialGenerator) NewID() id.PersonID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[8:], g.next.Add(1))
	u[6] = 0x70
	u[8] = (u[8] & 0x3f) | 0x80
	return id.PersonID(u)
}
