package main

import (
	. "fmt"

	"github.com/p7r0x7/xorhash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Forges a second preimage for a 33-byte message whose only odd byte sits in slot 31.

func main() {
	msg := make([]byte, 33)
	msg[31] = 1
	forged := xorhash.Forge(msg)
	want, got := xorhash.Sum(msg), xorhash.Sum(forged)

	Println(len(msg))
	Println(len(forged))
	Println(want[:])
	Println(got[:])
}
