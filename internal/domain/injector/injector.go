// Package injector corrupts messages the way a noisy channel would.
package injector

import (
	"math/rand/v2"
	"sync"
	"time"

	m "github.com/mouse-blink/datacom/internal/model"
)

const (
	printableMin = 32
	printableMax = 126
)

// Injector applies corruption strategies using its own random source.
// It is safe for concurrent use.
type Injector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns an Injector whose sequence of corruptions is fixed by seed.
func New(seed uint64) *Injector {
	return &Injector{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// NewFromTime returns an Injector seeded from the wall clock.
func NewFromTime() *Injector {
	return New(uint64(time.Now().UnixNano()))
}

var (
	defaultOnce     sync.Once
	defaultInjector *Injector
)

// Default returns the process-wide Injector, seeding it from the wall clock
// on first use.
func Default() *Injector {
	defaultOnce.Do(func() {
		defaultInjector = NewFromTime()
	})

	return defaultInjector
}

// Corrupt returns a corrupted copy of data and the strategy that produced it.
// A random method (including the zero value) picks one of the seven concrete
// strategies uniformly; InjectionNone returns an unchanged copy.
func (in *Injector) Corrupt(data []byte, method m.InjectionMethod) ([]byte, m.InjectionMethod) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if method.IsRandom() {
		if len(data) == 0 {
			return []byte{}, m.InjectionNone
		}

		methods := m.InjectionMethods()
		method = methods[in.rng.IntN(len(methods))]
	}

	return in.apply(data, method), method
}

func (in *Injector) apply(data []byte, method m.InjectionMethod) []byte {
	switch method {
	case m.InjectionBitFlip:
		return in.bitFlip(data)
	case m.InjectionCharSubstitution:
		return in.charSubstitution(data)
	case m.InjectionCharDeletion:
		return in.charDeletion(data)
	case m.InjectionCharInsertion:
		return in.charInsertion(data)
	case m.InjectionCharSwap:
		return in.charSwap(data)
	case m.InjectionMultipleBitFlips:
		return in.multipleBitFlips(data)
	case m.InjectionBurstError:
		return in.burstError(data)
	default:
		return clone(data)
	}
}

// between returns a uniform value in [lo, hi].
func (in *Injector) between(lo, hi int) int {
	return lo + in.rng.IntN(hi-lo+1)
}

func (in *Injector) printable() byte {
	return byte(in.between(printableMin, printableMax))
}

func clone(data []byte) []byte {
	return append([]byte{}, data...)
}
