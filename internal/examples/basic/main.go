package main

import (
	"fmt"

	objectid "github.com/venlit/go-objectid"
)

func main() {
	id, err := objectid.Generate()
	if err != nil {
		panic(err)
	}

	fmt.Println(id.ToHex()) // 24-char lowercase hex TIME|MACHINE|COUNTER
	// 68b2f1a41f9c83b75ab4e2d1
	fmt.Println(id.ToBytes()) // [12]byte
	// [104 178 241 164 31 156 131 183 90 180 226 209]
	fmt.Println(id.Timestamp()) // second resolution
	// 2026-08-30 12:01:08 +0000 UTC
	fmt.Println(id.IsFresh()) // minted in this call
	// true

	decoded, err := objectid.FromHex(id.ToHex())
	if err != nil {
		panic(err)
	}
	fmt.Println(decoded.Equal(id), decoded.IsFresh())
	// true false
}
