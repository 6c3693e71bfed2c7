// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"
	"math/rand"
	"testing"
)

var inf = math.Inf(1)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		spans  []Span
		want   []float64
		rounds int
	}{
		{
			name:   "even split below max",
			length: 90,
			spans:  []Span{{Min: 20, Max: 100, Stretch: 1}, {Min: 20, Max: 50, Stretch: 1}},
			want:   []float64{45, 45},
			rounds: 1,
		},
		{
			name:   "denied share moves on",
			length: 130,
			spans:  []Span{{Min: 20, Max: 100, Stretch: 1}, {Min: 20, Max: 50, Stretch: 1}},
			want:   []float64{80, 50},
			rounds: 2,
		},
		{
			name:   "all saturated leaves slack",
			length: 200,
			spans:  []Span{{Min: 20, Max: 100, Stretch: 1}, {Min: 20, Max: 50, Stretch: 1}},
			want:   []float64{100, 50},
			rounds: 1,
		},
		{
			name:   "too short keeps minimums",
			length: 30,
			spans:  []Span{{Min: 20, Max: 100, Stretch: 1}, {Min: 20, Max: 50, Stretch: 1}},
			want:   []float64{20, 20},
		},
		{
			name:   "zero stretch stays at min",
			length: 100,
			spans:  []Span{{Min: 10, Max: inf, Stretch: 0}, {Min: 10, Max: inf, Stretch: 2}},
			want:   []float64{10, 90},
			rounds: 1,
		},
		{
			name:   "three way redistribution",
			length: 100,
			spans: []Span{
				{Min: 0, Max: 10, Stretch: 1},
				{Min: 0, Max: inf, Stretch: 1},
				{Min: 0, Max: inf, Stretch: 2},
			},
			want:   []float64{10, 30, 60},
			rounds: 2,
		},
		{
			name:   "no stretch at all",
			length: 100,
			spans:  []Span{{Min: 10, Max: 40}, {Min: 10, Max: 40}},
			want:   []float64{10, 10},
		},
		{
			name:   "fixed children",
			length: 100,
			spans:  []Span{{Min: 30, Max: 30, Stretch: 1}, {Min: 30, Max: 30, Stretch: 1}},
			want:   []float64{30, 30},
		},
		{
			name:   "sub pixel slack",
			length: 20.3,
			spans:  []Span{{Min: 10, Max: inf, Stretch: 1}, {Min: 10, Max: inf, Stretch: 1}},
			want:   []float64{10, 10},
		},
		{
			name:   "empty",
			length: 100,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rounds := Allocate(tc.length, tc.spans)
			if rounds != tc.rounds {
				t.Errorf("rounds = %d, want %d", rounds, tc.rounds)
			}
			for i, s := range tc.spans {
				if math.Abs(s.Alloc-tc.want[i]) > 1e-9 {
					t.Errorf("span %d alloc = %v, want %v", i, s.Alloc, tc.want[i])
				}
			}
		})
	}
}

func TestAllocateResetsPreviousAllocation(t *testing.T) {
	spans := []Span{{Min: 5, Max: inf, Stretch: 1, Alloc: 1000}}
	Allocate(5, spans)
	if spans[0].Alloc != 5 {
		t.Errorf("alloc = %v, want 5", spans[0].Alloc)
	}
}

// TestAllocateProperties checks containment and conservation on
// random inputs that can be fit exactly.
func TestAllocateProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 2000; iter++ {
		n := 1 + r.Intn(8)
		spans := make([]Span, n)
		var sumMin, sumMax float64
		for i := range spans {
			min := float64(r.Intn(50))
			max := min + float64(r.Intn(100))
			if r.Intn(4) == 0 {
				max = inf
			}
			spans[i] = Span{Min: min, Max: max, Stretch: 1}
			sumMin += min
			sumMax += max
		}
		length := sumMin + r.Float64()*(sumMax-sumMin)
		if math.IsInf(sumMax, 1) {
			length = sumMin + r.Float64()*500
		}
		rounds := Allocate(length, spans)
		if rounds > maxRounds {
			t.Fatalf("rounds = %d, want <= %d", rounds, maxRounds)
		}
		var total float64
		for i, s := range spans {
			if s.Alloc < s.Min || s.Alloc > s.Max {
				t.Fatalf("iteration %d: span %d alloc %v outside [%v, %v]", iter, i, s.Alloc, s.Min, s.Max)
			}
			total += s.Alloc
		}
		if d := length - total; d < -1e-6 || d > minSlack {
			t.Fatalf("iteration %d: total %v for length %v (residual %v)", iter, total, length, d)
		}
	}
}

func TestAllocateTerminates(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	spans := make([]Span, 1000)
	var sumMax float64
	for i := range spans {
		// Every child saturates at a different point, forcing
		// one redistribution per child.
		spans[i] = Span{
			Min:     0,
			Max:     float64(i + 1),
			Stretch: 1 + r.Float64()*float64(i%7),
		}
		sumMax += spans[i].Max
	}
	length := sumMax * 3 / 4
	rounds := Allocate(length, spans)
	if rounds > maxRounds {
		t.Fatalf("rounds = %d, want <= %d", rounds, maxRounds)
	}
	var total float64
	for i, s := range spans {
		if s.Alloc < s.Min || s.Alloc > s.Max {
			t.Fatalf("span %d alloc %v outside [%v, %v]", i, s.Alloc, s.Min, s.Max)
		}
		total += s.Alloc
	}
	if total > length+1e-6 {
		t.Errorf("total %v exceeds length %v", total, length)
	}
}

func BenchmarkAllocate(b *testing.B) {
	spans := make([]Span, 100)
	for i := range spans {
		spans[i] = Span{Min: float64(i % 5), Max: float64(10 + i), Stretch: float64(1 + i%3)}
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Allocate(2000, spans)
	}
}
