package objectid

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// ObjectID is a 12-byte identifier made of three unsigned 32-bit fields:
// unix seconds, machine fingerprint and a per-process counter.
//
// ObjectIDs carry a transient freshness flag that records whether the value
// was minted by a Generator in this process (as opposed to decoded from an
// external representation). The flag is not part of equality, ordering or
// any encoding, so values must be compared with Equal or Compare rather
// than the == operator.
type ObjectID struct {
	time    uint32
	machine uint32
	counter uint32
	fresh   bool
}

// FromParts builds an ObjectID from its three raw fields. The result is not
// marked fresh.
func FromParts(sec, machine, counter uint32) ObjectID {
	return ObjectID{time: sec, machine: machine, counter: counter}
}

// FromTime returns the smallest ObjectID whose time field equals `t`
// truncated to unix seconds. Useful as the low bound of a key range.
func FromTime(t time.Time) ObjectID {
	return ObjectID{time: uint32(t.Unix())}
}

// FromTimeMax returns the largest ObjectID whose time field equals `t`
// truncated to unix seconds. Useful as the high bound of a key range.
func FromTimeMax(t time.Time) ObjectID {
	return ObjectID{time: uint32(t.Unix()), machine: math.MaxUint32, counter: math.MaxUint32}
}

// FromBytes decodes the raw 12-byte big-endian representation.
// It returns a *FormatError if `b` is not exactly 12 bytes long.
func FromBytes(b []byte) (ObjectID, error) {
	if len(b) != rawLen {
		return ObjectID{}, &FormatError{Reason: fmt.Sprintf("need %d bytes, got %d", rawLen, len(b))}
	}
	return ObjectID{
		time:    binary.BigEndian.Uint32(b[0:4]),
		machine: binary.BigEndian.Uint32(b[4:8]),
		counter: binary.BigEndian.Uint32(b[8:12]),
	}, nil
}

// ToBytes returns the raw 12-byte big-endian representation.
func (id ObjectID) ToBytes() [12]byte {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], id.time)
	binary.BigEndian.PutUint32(b[4:8], id.machine)
	binary.BigEndian.PutUint32(b[8:12], id.counter)
	return b
}

// Time returns the time field as unix seconds. The field wraps in 2106.
func (id ObjectID) Time() uint32 { return id.time }

// Timestamp returns the time field as a time.Time with second resolution.
func (id ObjectID) Timestamp() time.Time { return time.Unix(int64(id.time), 0) }

// Machine returns the machine fingerprint field.
func (id ObjectID) Machine() uint32 { return id.machine }

// Counter returns the counter field.
func (id ObjectID) Counter() uint32 { return id.counter }

// IsFresh reports whether the value was minted by a Generator in this
// process and has not been cleared with ClearFresh.
func (id ObjectID) IsFresh() bool { return id.fresh }

// ClearFresh marks the value as no longer freshly generated. It is
// idempotent.
func (id *ObjectID) ClearFresh() { id.fresh = false }

// IsZero reports whether all three fields are zero.
func (id ObjectID) IsZero() bool {
	return id.time == 0 && id.machine == 0 && id.counter == 0
}

// String returns the canonical hex form.
func (id ObjectID) String() string { return id.ToHex() }

// Equal reports whether all three fields of `other` match `id` exactly.
// The freshness flag is ignored.
func (id ObjectID) Equal(other ObjectID) bool {
	return id.time == other.time &&
		id.machine == other.machine &&
		id.counter == other.counter
}

// Compare orders `a` and `b` lexicographically by (time, machine, counter),
// each field compared as an unsigned 32-bit integer. It returns -1, 0 or 1.
func Compare(a, b ObjectID) int {
	if c := compareUint32(a.time, b.time); c != 0 {
		return c
	}
	if c := compareUint32(a.machine, b.machine); c != 0 {
		return c
	}
	return compareUint32(a.counter, b.counter)
}

func compareUint32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Coerce converts a loosely typed value into an ObjectID. It accepts an
// ObjectID, a non-nil *ObjectID or a well-formed 24-character hex string,
// and reports false for everything else, including nil.
func Coerce(v any) (ObjectID, bool) {
	switch t := v.(type) {
	case ObjectID:
		return t, true
	case *ObjectID:
		if t == nil {
			return ObjectID{}, false
		}
		return *t, true
	case string:
		id, err := FromHex(t)
		if err != nil {
			return ObjectID{}, false
		}
		return id, true
	}
	return ObjectID{}, false
}

// Equals reports whether `v` can be coerced to an ObjectID whose fields
// equal those of `id`.
func Equals(id ObjectID, v any) bool {
	other, ok := Coerce(v)
	return ok && id.Equal(other)
}
