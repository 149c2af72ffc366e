package main

import (
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/vainpath"
	"github.com/p7r0x7/xorhash"
	"github.com/p7r0x7/xorhash/trial"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure = 0, 1

var warnings, mismatches = 0, 0

func main() {
	Parse()
	os.Exit(program(Args()))
}

// help prints a usage menu. To consistently render this menu in most terminal windows, its content
// should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "xorsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "A parity checksum that anybody can forge.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bt] [--bits] [-F [-o DIR]] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-bt] [--bits] [-F [-o DIR]] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for xorhash: It digests an unlimited number of files or
// strings and, on request, demonstrates a forged collision for each of them.
func program(targets []string) int {
	if pHelp || len(targets) == 0 {
		help()
		return success
	}
	if pOutput != "" {
		if !pForge {
			Fprint(os.Stderr, purp, "--output has no effect without --forge.", zero, n)
		} else if err := os.MkdirAll(pOutput, 0o755); err != nil {
			warn(err)
			pOutput = ""
		}
	}

	for i, target := range targets {
		start, delta := time.Now(), ""

		msg, err := read(target)
		if err != nil {
			warn(err)
			continue
		}
		sum := xorhash.Sum(msg)

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		if pQuiet {
			Print(render(sum), n)
		} else {
			Print(yell, render(sum), zero, "  ", label(target), delta, n)
		}
		if pForge {
			forge(i, target, msg, sum)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
		if mismatches > 0 {
			Fprint(os.Stderr, mismatches, " ", purp, "forgeries failed to collide.", zero, n)
		}
	}
	if warnings > 0 || mismatches > 0 {
		return failure
	}
	return success
}

func read(target string) ([]byte, error) {
	switch {
	case pString:
		return []byte(target), nil
	case target == "-" || target == os.Stdin.Name():
		defer os.Stdin.Close() /* STDIN should not be reused. */
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(target)
	}
}

func forge(i int, target string, msg []byte, sum xorhash.Digest) {
	forged := xorhash.Forge(msg)
	got := xorhash.Sum(forged)
	verdict := "collides"
	if got != sum {
		verdict = "MISMATCH"
		mismatches++
	}

	if pOutput != "" {
		path := filepath.Join(pOutput, forgedName(i, target))
		if err := os.WriteFile(path, forged, 0o644); err != nil {
			warn(err)
		}
	}
	if pQuiet {
		Print(render(got), n)
		return
	}
	before, after := trial.Fingerprint(msg), trial.Fingerprint(forged)
	Print("  ", yell, render(got), zero, "  forged, ", len(forged), " bytes, ", verdict, n)
	Print("    blake3  ", hex.EncodeToString(before.BLAKE3[:]), " → ", hex.EncodeToString(after.BLAKE3[:]), n)
	Print("    sha256  ", hex.EncodeToString(before.SHA256[:]), " → ", hex.EncodeToString(after.SHA256[:]), n)
	Printf("    xxh3    %016x → %016x\n", before.XXH3, after.XXH3)
}

// forgedName names the file a forgery of the i-th target is written to. The index keeps targets
// sharing a base name from overwriting one another.
func forgedName(i int, target string) string {
	switch {
	case pString:
		return Sprintf("string%d.forged", i)
	case target == "-" || target == os.Stdin.Name():
		return "stdin.forged"
	default:
		return Sprintf("%d-%s.forged", i, filepath.Base(target))
	}
}

func render(d xorhash.Digest) string {
	switch {
	case pBits:
		return d.String()
	case pBase64:
		return base64.StdEncoding.EncodeToString(d[:])
	default:
		return hex.EncodeToString(d[:])
	}
}

func label(target string) string {
	switch {
	case pString:
		return zero + `"` + target + `"`
	case pNoCodes:
		return filepath.Clean(target)
	default:
		return und + vainpath.Simplify(target) + zero
	}
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	warnings++
}
