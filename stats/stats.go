// Package stats has small aggregate helpers over integer slices and ranges.
package stats

// Summary returns the maximum, minimum and integer average of values.
// An empty slice yields zeros.
func Summary(values []uint32) (max, min, avg uint32) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	max, min = values[0], values[0]
	var sum uint64
	for _, v := range values {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
		sum += uint64(v)
	}
	return max, min, uint32(sum / uint64(len(values)))
}

// AnalyzeRange counts the even and odd integers in [from, to).
func AnalyzeRange(from, to int) (evens, odds int) {
	for i := from; i < to; i++ {
		if i%2 == 0 {
			evens++
		} else {
			odds++
		}
	}
	return evens, odds
}

// SafeDiv divides a by b, reporting false instead of panicking on zero.
func SafeDiv(a, b int) (int, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// Element returns xs[i] if i is in bounds.
func Element(xs []int, i int) (int, bool) {
	if i < 0 || i >= len(xs) {
		return 0, false
	}
	return xs[i], true
}

// AppStats counts requests and errors.
type AppStats struct {
	Requests int
	Errors   int
}

// Request records a request and, when failed is set, an error.
func (s *AppStats) Request(failed bool) {
	s.Requests++
	if failed {
		s.Errors++
	}
}

// RunAppStats records n successful requests followed by one failed one.
func RunAppStats(n int) AppStats {
	var s AppStats
	for i := 0; i < n; i++ {
		s.Request(false)
	}
	s.Request(true)
	return s
}
