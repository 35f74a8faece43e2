// Package testing provides scripted random sources for the sim package.
package testing

import "sync"

// ScriptedSource replays fixed draws. Once a script runs out it falls back
// to FloatFallback and IntFallback.
type ScriptedSource struct {
	mu sync.Mutex

	Floats []float64
	Ints   []int

	FloatFallback float64
	IntFallback   func(n int) int

	// Call tracking
	FloatCalls int
	IntCalls   int
}

// NewScriptedSource returns a source that replays floats and ints in order
// and then behaves like NewNeutralSource.
func NewScriptedSource(floats []float64, ints []int) *ScriptedSource {
	s := NewNeutralSource()
	s.Floats = append([]float64(nil), floats...)
	s.Ints = append([]int(nil), ints...)
	return s
}

// NewNeutralSource returns a source whose draws produce zero deltas for every
// random walk in the tick and never fire a probabilistic event.
func NewNeutralSource() *ScriptedSource {
	return &ScriptedSource{
		FloatFallback: 0.5,
		IntFallback:   NeutralInt,
	}
}

// NeutralInt is the IntN result that cancels the tick's offset for n:
// 18 for the user walk (IntN(40)-18), 5 for server loads (IntN(10)-5),
// and 0 for catalog picks.
func NeutralInt(n int) int {
	switch n {
	case 40:
		return 18
	case 10:
		return 5
	default:
		return 0
	}
}

// Float64 returns the next scripted float.
func (s *ScriptedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FloatCalls++
	if len(s.Floats) == 0 {
		return s.FloatFallback
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// IntN returns the next scripted int, clamped to [0, n).
func (s *ScriptedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.IntCalls++
	var v int
	if len(s.Ints) == 0 {
		if s.IntFallback != nil {
			v = s.IntFallback(n)
		}
	} else {
		v = s.Ints[0]
		s.Ints = s.Ints[1:]
	}
	return min(max(0, v), n-1)
}

// Calls returns the total number of draws taken.
func (s *ScriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.FloatCalls + s.IntCalls
}
