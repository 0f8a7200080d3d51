package remapper

import (
	"fmt"

	"reflection-remapper/descriptor"
)

// Noop returns a Remapper that hands every name back unchanged, for
// runtimes that already use the source names.
func Noop() Remapper {
	return noop{}
}

type noop struct{}

func (noop) RemapClassName(name string) (string, error) {
	return name, nil
}

func (noop) RemapFieldName(owner, field string) (Field, error) {
	return Field{Owner: owner, Name: field}, nil
}

func (noop) RemapMethodName(owner, method string, paramTypeNames ...string) (Method, error) {
	desc, err := descriptor.Params(paramTypeNames...)
	if err != nil {
		return Method{}, fmt.Errorf("method %s.%s: %w", owner, method, err)
	}

	return Method{Owner: owner, Name: method, Descriptor: desc}, nil
}

func (noop) RemapClassOrArrayName(name string) (string, error) {
	return name, nil
}
