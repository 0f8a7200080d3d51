package remapper

import (
	"errors"

	"github.com/apex/log"
)

// walk runs lookup on owner and then on each superclass until it succeeds.
// The nearest declaring class wins. When every class misses, the most
// specific failure is returned: a descriptor mismatch over a missing
// member, a missing member over an unmapped class.
func walk[T any](r *Resolver, owner string, lookup func(class string) (T, error)) (T, error) {
	var zero T

	var classErr, memberErr, mismatchErr error

	visited := make(map[string]struct{})
	class := owner

	for {
		res, err := lookup(class)

		switch {
		case err == nil:
			return res, nil
		case errors.Is(err, ErrDescriptorMismatch):
			if mismatchErr == nil {
				mismatchErr = err
			}
		case errors.Is(err, ErrMemberNotMapped):
			if memberErr == nil {
				memberErr = err
			}
		case errors.Is(err, ErrClassNotMapped):
			if classErr == nil {
				classErr = err
			}
		default:
			return zero, err
		}

		visited[class] = struct{}{}

		super, ok := r.superclass(class)
		if !ok {
			break
		}

		if _, seen := visited[super]; seen {
			log.WithFields(log.Fields{
				"class": class,
				"super": super,
			}).Warn("superclass chain loops, stopping walk")

			break
		}

		log.WithFields(log.Fields{
			"owner": owner,
			"class": class,
			"super": super,
		}).Debug("member not declared, trying superclass")

		class = super
	}

	switch {
	case mismatchErr != nil:
		return zero, mismatchErr
	case memberErr != nil:
		return zero, memberErr
	default:
		return zero, classErr
	}
}

// superclass returns the direct superclass of a source-namespace class,
// also in the source namespace. Classes absent from the table keep their
// names on both sides.
func (r *Resolver) superclass(class string) (string, bool) {
	p := r.opts.provider
	if p == nil {
		return "", false
	}

	if r.opts.side == SideSource {
		super, ok := p.Superclass(class)
		return super, ok && super != ""
	}

	runtime, err := r.engine.ClassName(class)
	if err != nil {
		runtime = class
	}

	super, ok := p.Superclass(runtime)
	if !ok || super == "" {
		return "", false
	}

	if src, ok := r.engine.SourceClassName(super); ok {
		return src, true
	}

	return super, true
}
