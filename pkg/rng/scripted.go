package rng

import (
	"fmt"
	"sync"
)

// ScriptedSource replays a fixed sequence of values. It panics when a value
// falls outside the requested range or the script runs out, since either
// means the test that built it is wrong.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewScriptedSource creates a source that returns values in order
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) Next(min, max int) int {
	checkRange(min, max)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.values) {
		panic(fmt.Sprintf("rng: script exhausted after %d values", len(s.values)))
	}
	v := s.values[s.pos]
	if v < min || v >= max {
		panic(fmt.Sprintf("rng: scripted value %d (index %d) outside [%d, %d)", v, s.pos, min, max))
	}
	s.pos++
	return v
}

// Remaining returns how many scripted values have not been consumed
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values) - s.pos
}
