// Package rng provides the injectable random sources used by the draw.
package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"sync"
	"time"
)

// Source returns a uniformly distributed integer in the half-open range [min, max).
// Implementations panic when max <= min.
type Source interface {
	Next(min, max int) int
}

// MathSource is a seeded pseudo-random source, safe for concurrent use.
type MathSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

// NewMathSource creates a pseudo-random source with a fixed seed
func NewMathSource(seed int64) *MathSource {
	return &MathSource{r: mrand.New(mrand.NewSource(seed))}
}

// NewSource creates a pseudo-random source seeded from the clock
func NewSource() *MathSource {
	return NewMathSource(time.Now().UnixNano())
}

func (s *MathSource) Next(min, max int) int {
	checkRange(min, max)
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.Intn(max-min)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Next(min, max int) int {
	checkRange(min, max)
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		panic(fmt.Sprintf("rng: crypto source failed: %v", err))
	}
	return min + int(n.Int64())
}

func checkRange(min, max int) {
	if max <= min {
		panic(fmt.Sprintf("rng: empty range [%d, %d)", min, max))
	}
}
