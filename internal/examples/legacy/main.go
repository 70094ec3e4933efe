package main

import (
	"fmt"

	objectid "github.com/venlit/go-objectid"
)

// Demonstrates interoperability with the legacy reordered hex convention:
// the reorder transform is its own inverse, so canonical and legacy forms
// convert back and forth losslessly.
func main() {
	id := objectid.FromParts(1, 2, 3)

	canonical := id.ToHex()
	legacy := id.ToLegacyHex()
	fmt.Println(canonical)
	// 000000010000000200000003
	fmt.Println(legacy)
	// 020000000100000003000000

	back, err := objectid.FromLegacyHex(legacy)
	if err != nil {
		panic(err)
	}
	fmt.Println(back.Equal(id))
	// true

	// Applying the transform to a legacy string yields the canonical form.
	roundabout, err := objectid.FromHex(canonical)
	if err != nil {
		panic(err)
	}
	fmt.Println(roundabout.ToLegacyHex() == legacy)
	// true
}
