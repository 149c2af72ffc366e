package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/p7r0x7/xorhash"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var d xorhash.Digest
	d[0], d[31] = 1, 1
	defer func() { pBits, pBase64 = false, false }()

	require.Equal(t, "01"+strings.Repeat("00", 30)+"01", render(d))

	pBase64 = true
	require.Equal(t, "AQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAE=", render(d))

	pBits = true
	require.Equal(t, "10000000000000000000000000000001", render(d))
}

func TestForgedName(t *testing.T) {
	defer func() { pString = false }()
	require.Equal(t, "0-notes.txt.forged", forgedName(0, filepath.Join("a", "b", "notes.txt")))
	require.Equal(t, "3-notes.txt.forged", forgedName(3, filepath.Join("c", "notes.txt")))
	require.Equal(t, "stdin.forged", forgedName(1, "-"))
	pString = true
	require.Equal(t, "string2.forged", forgedName(2, "hello"))
}

func TestForge_WritesCollision(t *testing.T) {
	dir := t.TempDir()
	pOutput, pQuiet = dir, true
	defer func() { pOutput, pQuiet, mismatches = "", false, 0 }()

	msg := []byte("the quick brown fox")
	forge(0, "fox.txt", msg, xorhash.Sum(msg))
	require.Zero(t, mismatches)

	forged, err := os.ReadFile(filepath.Join(dir, "0-fox.txt.forged"))
	require.NoError(t, err)
	require.Equal(t, xorhash.Forge(msg), forged)
	require.True(t, xorhash.Collides(msg, forged))
}

/* resetFlags restores every global that program reads or writes. */
func resetFlags() {
	pHelp, pBase64, pBits, pForge, pQuiet, pStrict, pString, pTime = false, false, false, false, false, false, false, false
	pOutput, warnings, mismatches = "", 0, 0
}

func TestProgram(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "message")
	require.NoError(t, os.WriteFile(file, []byte("attack at dawn"), 0o644))

	for _, tc := range []struct {
		name     string
		set      func(out string)
		targets  []string
		code     int
		warnings int
		outDir   bool
	}{
		{"no targets", func(string) {}, nil, success, 0, false},
		{"readable file", func(string) {}, []string{file}, success, 0, false},
		{"missing file", func(string) {}, []string{filepath.Join(dir, "absent")}, failure, 1, false},
		{"one of two missing", func(string) {}, []string{file, filepath.Join(dir, "absent")}, failure, 1, false},
		{"strings", func(string) { pString = true }, []string{"a", "b"}, success, 0, false},
		{"output without forge", func(out string) { pOutput = out }, []string{file}, success, 0, false},
		{"forge into output", func(out string) { pForge, pOutput = true, out }, []string{file}, success, 0, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags()
			defer resetFlags()
			pQuiet = true
			out := filepath.Join(t.TempDir(), "forged")
			tc.set(out)

			require.Equal(t, tc.code, program(tc.targets))
			require.Equal(t, tc.warnings, warnings)
			_, err := os.Stat(out)
			require.Equal(t, tc.outDir, err == nil, "output directory created")
		})
	}
}

func TestProgram_SharedBaseName(t *testing.T) {
	resetFlags()
	defer resetFlags()
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a", "x"), filepath.Join(dir, "b", "x")
	require.NoError(t, os.MkdirAll(filepath.Dir(a), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Dir(b), 0o755))
	require.NoError(t, os.WriteFile(a, []byte{1}, 0o644))
	require.NoError(t, os.WriteFile(b, make([]byte, 40), 0o644))

	out := filepath.Join(dir, "out")
	pForge, pOutput, pQuiet = true, out, true
	require.Equal(t, success, program([]string{a, b}))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first, err := os.ReadFile(filepath.Join(out, "0-x.forged"))
	require.NoError(t, err)
	require.Equal(t, xorhash.Forge([]byte{1}), first)
	second, err := os.ReadFile(filepath.Join(out, "1-x.forged"))
	require.NoError(t, err)
	require.Equal(t, xorhash.Forge(make([]byte, 40)), second)
}
