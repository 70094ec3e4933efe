// Package objectid implements a compact, globally unique 12-byte identifier
// and the operations to generate, encode, decode, compare and validate it.
//
// # Format
//
// An ObjectID is 12 bytes big-endian, divided into three unsigned 32-bit
// fields: [4 bytes unix seconds][4 bytes machine fingerprint][4 bytes
// counter]. The layout makes the raw bytes sort by generation time first,
// so they work well as range-scannable storage keys.
//
// # Representations
//
// Three representations round-trip exactly with each other:
//
//   - raw bytes: the 12-byte big-endian form
//   - canonical hex: 24 lowercase hex characters, the hex encoding of the
//     raw bytes
//   - legacy hex: a byte-group reordered rendering kept for interoperability
//     with an older textual convention; the reorder transform is its own
//     inverse
//
// # Generation
//
// A Generator combines the wall clock (seconds, truncated to 32 bits), a
// fingerprint derived once per process from machine and process identity
// signals, and an atomic counter. Uniqueness relies on coarse time plus the
// fingerprint plus the counter, not on randomness quality; this is not a
// cryptographically secure identifier.
//
// Usage
//
//	id, err := objectid.Generate()
//	s := id.ToHex()       // "65f2a1c800bead42000186a0"
//	b := id.ToBytes()     // [12]byte
//	back, err := objectid.FromHex(s)
package objectid
