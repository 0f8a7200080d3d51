package remapper

import (
	"fmt"
	"strings"

	"reflection-remapper/hierarchy"
)

//go:generate go tool stringer -type=Mode -output=mode_string.go
//go:generate go tool stringer -type=Side -output=side_string.go

// Mode is the failure policy for class-name resolution.
type Mode int

const (
	// Strict reports ErrClassNotMapped for classes missing from the table.
	Strict Mode = iota
	// Permissive resolves classes missing from the table to themselves.
	Permissive
)

// ParseMode accepts "strict" or "permissive" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	default:
		return Strict, fmt.Errorf("unknown mode %q (want strict or permissive)", s)
	}
}

// Side names the namespace a hierarchy provider speaks.
type Side int

const (
	// SideTarget providers answer with runtime (target namespace) names.
	SideTarget Side = iota
	// SideSource providers answer with source namespace names.
	SideSource
)

// ParseSide accepts "target" or "source" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "target", "":
		return SideTarget, nil
	case "source":
		return SideSource, nil
	default:
		return SideTarget, fmt.Errorf("unknown hierarchy side %q (want target or source)", s)
	}
}

type options struct {
	mode       Mode
	provider   hierarchy.Provider
	side       Side
	cacheSize  int
	preprocess func(string) string
}

// Option configures a Resolver.
type Option func(*options)

// WithMode sets the class-name failure policy. Field and method
// resolution ignore it.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithHierarchy enables the superclass walk for members not declared on
// the queried class.
func WithHierarchy(p hierarchy.Provider, side Side) Option {
	return func(o *options) {
		o.provider = p
		o.side = side
	}
}

// WithCacheSize bounds the result cache to n entries with LRU eviction.
// Zero keeps every result.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithClassNamePreprocessor rewrites class names before they are looked up
// by RemapClassName and RemapClassOrArrayName.
func WithClassNamePreprocessor(fn func(string) string) Option {
	return func(o *options) {
		o.preprocess = fn
	}
}
