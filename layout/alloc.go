// SPDX-License-Identifier: Unlicense OR MIT

package layout

const (
	// maxRounds bounds the number of redistribution rounds of Allocate.
	maxRounds = 10
	// minSlack is the smallest remaining length worth another round.
	minSlack = 0.5
)

// Span is the allocation state of one child along the distributed axis.
type Span struct {
	// Min and Max bound Alloc. Max is +Inf for unbounded children.
	Min, Max float64
	// Stretch is the relative share of extra space.
	Stretch float64
	// Alloc is the allocated length.
	Alloc float64
}

// Allocate distributes length among spans. Every span starts at its
// minimum; the space left over is handed out in proportion to the
// stretch factors of the spans that can still grow. Spans reaching
// their maximum are clamped and drop out of the following rounds, so
// their denied share is redistributed among the others.
//
// Allocation stops when the remaining stretch is below 1, when less
// than half a pixel is left, or after 10 rounds. The sum of the
// allocations never exceeds length unless the minimums already do.
// Allocate returns the number of rounds run.
func Allocate(length float64, spans []Span) int {
	var total, stretch float64
	for i := range spans {
		s := &spans[i]
		s.Alloc = s.Min
		total += s.Min
		if s.Alloc < s.Max {
			stretch += s.Stretch
		}
	}
	extra := length - total
	// Nothing can grow, or there is nothing to hand out.
	if stretch <= 0 || extra < minSlack {
		return 0
	}
	rounds := 0
	for rounds < maxRounds {
		rounds++
		var removed float64
		total = 0
		for i := range spans {
			s := &spans[i]
			if s.Alloc < s.Max {
				s.Alloc += extra * s.Stretch / stretch
				if s.Alloc >= s.Max {
					s.Alloc = s.Max
					removed += s.Stretch
				}
			}
			total += s.Alloc
		}
		extra = length - total
		stretch -= removed
		if stretch < 1 || extra < minSlack {
			break
		}
	}
	return rounds
}
