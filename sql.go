package objectid

import (
	"database/sql/driver"
	"fmt"
	"math"
)

// Value implements driver.Valuer, storing the ObjectID as its raw 12-byte
// big-endian form. Because the time field leads, a BLOB primary key built
// from it clusters rows by generation time.
func (id ObjectID) Value() (driver.Value, error) {
	b := id.ToBytes()
	return b[:], nil
}

// Scan implements sql.Scanner. It accepts the raw 12-byte form, a
// 24-character hex string, or either of those as []byte.
func (id *ObjectID) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		if len(v) == encodedLen {
			return id.scanHex(string(v))
		}
		decoded, err := FromBytes(v)
		if err != nil {
			return err
		}
		*id = decoded
		return nil
	case string:
		return id.scanHex(v)
	default:
		return &FormatError{Reason: fmt.Sprintf("cannot scan %T into ObjectID", src)}
	}
}

func (id *ObjectID) scanHex(s string) error {
	decoded, err := FromHex(s)
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}

// NullObjectID represents an ObjectID that may be absent. It implements
// the sql.Scanner and driver.Valuer interfaces so it can be scanned from
// and stored into nullable database columns, and marshals to JSON null
// when invalid.
type NullObjectID struct {
	ID    ObjectID
	Valid bool
}

// Value implements driver.Valuer, returning NULL when invalid.
func (n NullObjectID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.ID.Value()
}

// Scan implements sql.Scanner, treating NULL as the invalid NullObjectID.
func (n *NullObjectID) Scan(src any) error {
	if src == nil {
		*n = NullObjectID{}
		return nil
	}
	var id ObjectID
	if err := id.Scan(src); err != nil {
		return err
	}
	*n = NullObjectID{ID: id, Valid: true}
	return nil
}

// Compare orders two possibly-absent ObjectIDs. Absence sorts first: a
// present value always compares greater than an invalid NullObjectID.
func (n NullObjectID) Compare(other NullObjectID) int {
	switch {
	case !n.Valid && !other.Valid:
		return 0
	case !n.Valid:
		return -1
	case !other.Valid:
		return 1
	}
	return Compare(n.ID, other.ID)
}

// BlobObjectID is a utility for querying ObjectIDs stored in raw-byte
// database columns, such as SQLite's `BLOB` and PostgreSQL's `BYTEA`.
// The big-endian layout puts the time field first, so byte-wise comparison
// of the stored keys orders rows by generation time, allowing efficient,
// indexed range queries.
var BlobObjectID = blobObjectID{}

type blobObjectID struct{}

// TimeRange returns `min` and `max` keys for a database query based on a
// timestamp range in unix seconds. The returned values can be used directly
// in a SQL `BETWEEN` clause on a raw-byte column.
func (blobObjectID) TimeRange(startSec int64, endSec int64) ([]byte, []byte, error) {
	if startSec < 0 || endSec < 0 {
		return nil, nil, fmt.Errorf("timestamps must be non-negative: start %d, end %d", startSec, endSec)
	}
	if startSec > endSec {
		return nil, nil, fmt.Errorf("startSec must be less than or equal to endSec")
	}
	if startSec > math.MaxUint32 || endSec > math.MaxUint32 {
		return nil, nil, fmt.Errorf("timestamp exceeds the 32-bit range")
	}

	min := FromParts(uint32(startSec), 0, 0).ToBytes()
	max := FromParts(uint32(endSec), math.MaxUint32, math.MaxUint32).ToBytes()
	return min[:], max[:], nil
}

// GetTimestamp extracts the embedded unix seconds from an ObjectID stored
// as a raw-byte key.
func (blobObjectID) GetTimestamp(key []byte) (int64, error) {
	id, err := FromBytes(key)
	if err != nil {
		return 0, err
	}
	return int64(id.Time()), nil
}
