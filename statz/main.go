package main

import (
	. "fmt"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/xorhash"
	"github.com/p7r0x7/xorhash/trial"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Forge allocates three padded copies per call, so sizes stop well short of a gibibyte. */
var sizes = [...]int{64, 4 << 10, 512 << 10, 16 << 20}

type alg struct {
	name string
	run  func(msg []byte)
}

var algs = []alg{
	{"xorhash.Sum", func(msg []byte) { xorhash.Sum(msg) }},
	{"xorhash.Forge", func(msg []byte) { xorhash.Forge(msg) }},
	{"xorhash.Forge+Sum", func(msg []byte) { xorhash.Sum(xorhash.Forge(msg)) }},
	{"minio/sha256-simd", func(msg []byte) { sha256.Sum256(msg) }},
	{"zeebo/blake3", func(msg []byte) { blake3.Sum256(msg) }},
	{"zeebo/xxh3", func(msg []byte) { xxh3.Hash(msg) }},
	{"trial.Fingerprint", func(msg []byte) { trial.Fingerprint(msg) }},
}

// tscHz estimates the timestamp counter's frequency, or returns 0 where it cannot be read.
func tscHz() float64 {
	overhead := gotsc.TSCOverhead()
	if overhead == 0 {
		return 0
	}
	const window = 50 * time.Millisecond
	start := gotsc.BenchStart()
	time.Sleep(window)
	end := gotsc.BenchEnd()
	return float64(end-start-overhead) / window.Seconds()
}

// measure benchmarks a over every entry of sizes, each message drawn from src.
func measure(a alg, src *trial.Source, hz float64) (mbps, cpb, allocs [len(sizes)]float64) {
	for i, size := range sizes {
		msg := src.Message(size)
		for len(msg) < size { /* Message draws its length; only full-sized ones are wanted here. */
			msg = append(msg, src.Message(size-len(msg))...)
		}
		r := testing.Benchmark(func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for n := b.N; n > 0; n-- {
				a.run(msg)
			}
		})
		bps := float64(r.Bytes*int64(r.N)) / r.T.Seconds()
		mbps[i], allocs[i] = bps/1e6, float64(r.AllocedBytesPerOp())
		if hz > 0 {
			cpb[i] = hz / bps
		}
	}
	return
}

func row(label string, v [len(sizes)]float64, unit string) {
	Printf("  %-6s", label)
	for _, f := range v {
		Printf(" %10.4g", f)
	}
	Println("  " + unit)
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	if !forgeTest() {
		Println("Forged messages failed to collide; skipping benchmarks.")
		os.Exit(1)
	}
	biasTest()
	Println(" ============================================= ")

	hz, src := tscHz(), trial.NewSource(seed)
	Printf("  %-6s %10s %10s %10s %10s\n", "", "64B", "4K", "512K", "16M")
	for _, a := range algs {
		Println(a.name)
		mbps, cpb, allocs := measure(a, src, hz)
		row("Speed", mbps, "MB/s")
		if hz > 0 {
			row("", cpb, "cpb")
		}
		row("Usage", allocs, "B/op")
		Println()
	}

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
