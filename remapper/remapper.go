package remapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"reflection-remapper/descriptor"
	"reflection-remapper/internal/resolve"
	"reflection-remapper/mapping"
)

var (
	// ErrUnknownNamespace is returned by New for a namespace the table lacks.
	ErrUnknownNamespace = resolve.ErrUnknownNamespace

	// ErrClassNotMapped is returned when a class has no name in the target
	// namespace. Permissive mode suppresses it for class names.
	ErrClassNotMapped = resolve.ErrClassNotMapped

	// ErrMemberNotMapped is returned when no class in the superclass chain
	// declares the field or method.
	ErrMemberNotMapped = resolve.ErrMemberNotMapped

	// ErrDescriptorMismatch is returned when the method name exists but no
	// overload takes the given parameter types.
	ErrDescriptorMismatch = resolve.ErrDescriptorMismatch
)

// Field is a resolved field: the runtime name of the class declaring it
// and the field's runtime name.
type Field = resolve.Field

// Method is a resolved method: the runtime name of the declaring class,
// the method's runtime name and its full descriptor in runtime names.
type Method = resolve.Method

// Remapper translates names for reflective access.
type Remapper interface {
	RemapClassName(name string) (string, error)
	RemapFieldName(owner, field string) (Field, error)
	RemapMethodName(owner, method string, paramTypeNames ...string) (Method, error)
	RemapClassOrArrayName(name string) (string, error)
}

var (
	_ Remapper = (*Resolver)(nil)
	_ Remapper = noop{}
)

// Resolver remaps names from one namespace to another.
type Resolver struct {
	engine *resolve.Engine
	opts   options
	cache  resultCache
}

// New returns a Resolver translating names from the from namespace to the
// to namespace of table.
func New(table mapping.Reader, from, to string, opts ...Option) (*Resolver, error) {
	o := options{mode: Strict, side: SideTarget}
	for _, opt := range opts {
		opt(&o)
	}

	if o.cacheSize < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", o.cacheSize)
	}

	engine, err := resolve.New(table, from, to)
	if err != nil {
		return nil, err
	}

	cache, err := newCache(o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	return &Resolver{engine: engine, opts: o, cache: cache}, nil
}

// From returns the source namespace.
func (r *Resolver) From() string { return r.engine.From() }

// To returns the target namespace.
func (r *Resolver) To() string { return r.engine.To() }

// Mode returns the class-name failure policy.
func (r *Resolver) Mode() Mode { return r.opts.mode }

// CacheLen returns the number of cached results.
func (r *Resolver) CacheLen() int { return r.cache.Len() }

// RemapClassName translates a binary class name such as
// "net.minecraft.world.level.Level" or "a.B$Inner".
func (r *Resolver) RemapClassName(name string) (string, error) {
	if r.opts.preprocess != nil {
		name = r.opts.preprocess(name)
	}

	key := cacheKey{kind: kindClass, class: name}
	if v, ok := r.cache.Get(key); ok {
		return v.(string), nil
	}

	target, err := r.engine.ClassName(name)
	if err != nil {
		if r.opts.mode != Permissive || !errors.Is(err, ErrClassNotMapped) {
			return "", err
		}

		log.WithField("class", name).Debug("class not mapped, keeping its name")
		target = name
	}

	r.cache.Add(key, target)

	return target, nil
}

// RemapClassOrArrayName is RemapClassName for names that may denote
// arrays, either in source form ("a.B[]") or as reported by reflection
// ("[La.B;"). The array shape is preserved and primitive arrays are
// returned unchanged.
func (r *Resolver) RemapClassOrArrayName(name string) (string, error) {
	if !strings.HasPrefix(name, "[") && !strings.HasSuffix(name, "[]") {
		return r.RemapClassName(name)
	}

	t, err := descriptor.FromTypeName(name)
	if err != nil {
		return "", err
	}

	elem, ok := t.ClassName()
	if !ok {
		return name, nil
	}

	target, err := r.RemapClassName(elem)
	if err != nil {
		return "", err
	}

	out := descriptor.ArrayOf(descriptor.Object(target), t.Dims())
	if strings.HasPrefix(name, "[") {
		return out.ReflectName(), nil
	}

	return out.TypeName(), nil
}

// RemapFieldName translates a field name. owner is the class the field is
// accessed through; the returned Owner is the class that declares it.
func (r *Resolver) RemapFieldName(owner, field string) (Field, error) {
	key := cacheKey{kind: kindField, class: owner, member: field}
	if v, ok := r.cache.Get(key); ok {
		return v.(Field), nil
	}

	f, err := walk(r, owner, func(class string) (Field, error) {
		return r.engine.Field(class, field)
	})
	if err != nil {
		return Field{}, err
	}

	r.cache.Add(key, f)

	return f, nil
}

// RemapMethodName translates a method name. Parameter types are Java type
// names in the source namespace ("int", "a.B", "a.B[]" or "[La.B;") and
// pick the overload.
func (r *Resolver) RemapMethodName(owner, method string, paramTypeNames ...string) (Method, error) {
	desc, err := descriptor.Params(paramTypeNames...)
	if err != nil {
		return Method{}, fmt.Errorf("method %s.%s: %w", owner, method, err)
	}

	key := cacheKey{kind: kindMethod, class: owner, member: method, desc: desc.String()}
	if v, ok := r.cache.Get(key); ok {
		return v.(Method), nil
	}

	m, err := walk(r, owner, func(class string) (Method, error) {
		return r.engine.Method(class, method, desc)
	})
	if err != nil {
		return Method{}, err
	}

	r.cache.Add(key, m)

	return m, nil
}
