//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Older consoles print escape codes literally unless asked not to. */
func init() {
	pNoCodesDefault = !enableVT(os.Stdout, os.Stderr)
	pNoCodes = pNoCodesDefault
}

func enableVT(files ...*os.File) bool {
	for _, f := range files {
		var mode uint32
		h := windows.Handle(f.Fd())
		if err := windows.GetConsoleMode(h, &mode); err != nil {
			return false
		}
		if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
			continue
		}
		if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			return false
		}
	}
	return true
}
