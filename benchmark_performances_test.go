// benchmark_performances_test.go: Benchmarks for the rotating buffer pool
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkRender_SteadyState measures the amortized path: same-shaped
// renders reusing warmed slot storage.
func BenchmarkRender_SteadyState(b *testing.B) {
	pool := NewWithConfig(Config{SlotCount: 8})
	for i := 0; i < 16; i++ { // warm every slot
		if _, err := pool.Render("request %d from %s", Int(i), String("10.0.0.1")); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pool.Render("request %d from %s", Int(i%1000), String("10.0.0.1")); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRender_Fmt is the baseline this pool exists to beat
func BenchmarkRender_Fmt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("request %d from %s", i%1000, "10.0.0.1")
	}
}

// BenchmarkRenderString measures the owned-copy mode
func BenchmarkRenderString(b *testing.B) {
	pool := NewWithConfig(Config{SlotCount: 8})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := pool.RenderString("request %d", Int(i%1000)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRender_GrowShrink measures the worst case: alternating sizes
// that defeat the reuse heuristic on every call.
func BenchmarkRender_GrowShrink(b *testing.B) {
	pool := NewWithConfig(Config{SlotCount: 1})
	large := strings.Repeat("x", 4096)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var err error
		if i%2 == 0 {
			_, err = pool.Render("%s", String(large))
		} else {
			_, err = pool.Render("%s", String("tiny"))
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMeasureFormat isolates the dry-run pass
func BenchmarkMeasureFormat(b *testing.B) {
	args := []Arg{Int(12345), String("payload"), Float(2.5)}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := measureFormat("%d %s %g", args); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSpan measures the byte-map scanners
func BenchmarkSpan(b *testing.B) {
	s := strings.Repeat("0123456789", 20) + ";"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = SpanNone(s, ";,")
	}
}
