package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownInjection is returned by ParseInjection for names outside the strategy set.
var ErrUnknownInjection = errors.New("unknown injection method")

// InjectionMethod represents the corruption strategy applied by the relay.
type InjectionMethod string

const (
	// InjectionRandom picks one of the concrete strategies uniformly.
	InjectionRandom InjectionMethod = "random"
	// InjectionBitFlip flips exactly one bit.
	InjectionBitFlip InjectionMethod = "bit-flip"
	// InjectionCharSubstitution replaces one byte with a printable character.
	InjectionCharSubstitution InjectionMethod = "char-substitution"
	// InjectionCharDeletion removes one byte.
	InjectionCharDeletion InjectionMethod = "char-deletion"
	// InjectionCharInsertion inserts one printable byte.
	InjectionCharInsertion InjectionMethod = "char-insertion"
	// InjectionCharSwap swaps two adjacent bytes.
	InjectionCharSwap InjectionMethod = "char-swap"
	// InjectionMultipleBitFlips flips 2 to 5 bits.
	InjectionMultipleBitFlips InjectionMethod = "multiple-bit-flips"
	// InjectionBurstError overwrites a run of 3 to 8 bytes.
	InjectionBurstError InjectionMethod = "burst-error"
	// InjectionNone leaves the data untouched.
	InjectionNone InjectionMethod = "none"
)

// InjectionMethods returns the concrete strategies in dispatch order.
func InjectionMethods() []InjectionMethod {
	return []InjectionMethod{
		InjectionBitFlip,
		InjectionCharSubstitution,
		InjectionCharDeletion,
		InjectionCharInsertion,
		InjectionCharSwap,
		InjectionMultipleBitFlips,
		InjectionBurstError,
	}
}

// IsRandom reports whether the strategy is resolved at injection time.
// The zero value counts as random.
func (i InjectionMethod) IsRandom() bool {
	return i == "" || i == InjectionRandom
}

// ParseInjection resolves a user supplied strategy name.
func ParseInjection(name string) (InjectionMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")

	switch normalized {
	case "", string(InjectionRandom):
		return InjectionRandom, nil
	case string(InjectionNone):
		return InjectionNone, nil
	}

	for _, method := range InjectionMethods() {
		if string(method) == normalized {
			return method, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownInjection, name)
}
