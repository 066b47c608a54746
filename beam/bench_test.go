package beam_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vleko/aoc2023/beam"
)

// randomContraption builds an M×M field with roughly one mirror or
// splitter per five tiles, seeded for reproducibility.
func randomContraption(m int, seed int64) string {
	rnd := rand.New(rand.NewSource(seed))
	tiles := []byte(`./\-|`)
	var sb strings.Builder
	for y := 0; y < m; y++ {
		for x := 0; x < m; x++ {
			if rnd.Intn(5) == 0 {
				sb.WriteByte(tiles[1+rnd.Intn(4)])
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkEnergized measures a single traversal on a 110×110 field,
// about the size of a real puzzle input.
func BenchmarkEnergized(b *testing.B) {
	c, err := beam.Parse(randomContraption(110, 42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Energized(beam.DefaultStart)
	}
}

// BenchmarkMaxEnergized compares the serial and parallel edge sweeps.
func BenchmarkMaxEnergized(b *testing.B) {
	c, err := beam.Parse(randomContraption(110, 42))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Serial", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = c.MaxEnergized(beam.WithParallelism(1))
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = c.MaxEnergized()
		}
	})
}
