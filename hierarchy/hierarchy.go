// Package hierarchy provides class-hierarchy providers: answers to "what is
// the direct superclass of this class" supplied from outside the mapping
// table.
//
// Mapping tables only record members on the class that declares them, so
// resolvers climb the superclass chain through a Provider when a member
// is not found on the queried class. Only superclasses are modelled;
// interfaces are never part of the chain.
package hierarchy

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/dominikbraun/graph"
)

// ErrCycle is returned when superclass edges form a loop.
var ErrCycle = errors.New("class hierarchy contains a cycle")

// Provider returns the direct superclass of a class, or false when the
// class is a root or unknown.
type Provider interface {
	Superclass(className string) (string, bool)
}

// Func adapts a function to Provider.
type Func func(className string) (string, bool)

// Superclass calls f.
func (f Func) Superclass(className string) (string, bool) {
	return f(className)
}

// Chain asks each provider in order and returns the first answer.
type Chain []Provider

// Superclass implements Provider.
func (c Chain) Superclass(className string) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}

		if super, ok := p.Superclass(className); ok {
			return super, true
		}
	}

	return "", false
}

// Static is an immutable, acyclic set of superclass edges.
type Static struct {
	parents map[string]string
}

// NewStatic builds a Static provider from child -> superclass edges.
// Edges that would close a loop are rejected with ErrCycle.
func NewStatic(parents map[string]string) (*Static, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	for _, child := range slices.Sorted(maps.Keys(parents)) {
		super := parents[child]
		if child == "" || super == "" {
			return nil, fmt.Errorf("empty class name in edge %q -> %q", child, super)
		}

		if child == super {
			return nil, fmt.Errorf("%w: %s extends itself", ErrCycle, child)
		}

		for _, v := range []string{child, super} {
			if err := g.AddVertex(v); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("failed to add class %s: %w", v, err)
			}
		}

		if err := g.AddEdge(child, super); err != nil {
			if errors.Is(err, graph.ErrEdgeCreatesCycle) {
				return nil, fmt.Errorf("%w: %s extends %s", ErrCycle, child, super)
			}

			return nil, fmt.Errorf("failed to add edge %s -> %s: %w", child, super, err)
		}
	}

	return &Static{parents: maps.Clone(parents)}, nil
}

// Superclass implements Provider.
func (s *Static) Superclass(className string) (string, bool) {
	super, ok := s.parents[className]
	return super, ok
}

// Len returns the number of classes with a known superclass.
func (s *Static) Len() int {
	return len(s.parents)
}

// Ancestors returns the superclass chain of className, nearest first.
func (s *Static) Ancestors(className string) []string {
	var out []string

	for {
		super, ok := s.parents[className]
		if !ok {
			return out
		}

		out = append(out, super)
		className = super
	}
}
